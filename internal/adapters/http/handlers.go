package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	api "policymind/internal/api"
	"policymind/internal/domain"
	"policymind/internal/services/regulations"
)

// maxTitleBytes bounds the optional title field of an upload.
const maxTitleBytes = 4 << 10

var (
	errMissingFile    = &domain.ValidationError{Msg: "Missing PDF file"}
	errInvalidForm    = &domain.ValidationError{Msg: "Invalid form data"}
	errMissingInsight = &domain.ValidationError{Msg: "Insight ID required"}
)

func (s *Server) GetHealthz(context.Context, api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) ListInsights(ctx context.Context, req api.ListInsightsRequestObject) (api.ListInsightsResponseObject, error) {
	archived := false
	if raw := req.Params.Archived; raw != nil {
		archived = *raw == "1" || strings.EqualFold(*raw, "true")
	}
	_, companyID, err := s.companyFor(ctx)
	if errors.Is(err, domain.ErrNoCompany) {
		return api.ListInsights200JSONResponse{}, nil
	}
	if err != nil {
		return nil, err
	}
	list, err := s.Briefings.List(ctx, companyID, archived)
	if err != nil {
		return nil, err
	}
	return toInsights(list), nil
}

func (s *Server) UpdateInsight(ctx context.Context, req api.UpdateInsightRequestObject) (api.UpdateInsightResponseObject, error) {
	update, err := toUpdate(req.Body)
	if err != nil {
		return nil, err
	}
	_, companyID, err := s.companyFor(ctx)
	if err != nil {
		return nil, err
	}
	b, err := s.Briefings.Update(ctx, companyID, strings.TrimSpace(req.Id), update)
	if err != nil {
		return nil, err
	}
	return api.UpdateInsight200JSONResponse(toInsight(b)), nil
}

func (s *Server) DeleteInsight(ctx context.Context, req api.DeleteInsightRequestObject) (api.DeleteInsightResponseObject, error) {
	_, companyID, err := s.companyFor(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Briefings.Delete(ctx, companyID, strings.TrimSpace(req.Id)); err != nil {
		return nil, err
	}
	return api.DeleteInsight200JSONResponse{Success: true}, nil
}

func (s *Server) UploadRegulation(ctx context.Context, req api.UploadRegulationRequestObject) (api.UploadRegulationResponseObject, error) {
	upload, err := readUpload(req.Body)
	if err != nil {
		return nil, err
	}
	if err := regulations.CheckUpload(upload.ContentType, int64(len(upload.Data))); err != nil {
		return nil, err
	}
	_, companyID, err := s.companyFor(ctx)
	if errors.Is(err, domain.ErrNoCompany) {
		err = domain.ErrOnboardingRequired
	}
	if err != nil {
		return nil, err
	}
	b, err := s.Regulations.Submit(ctx, companyID, upload)
	if err != nil {
		return nil, err
	}
	return api.UploadRegulation200JSONResponse(toInsight(b)), nil
}

// readUpload streams the multipart body. The file part is read one byte past
// the limit so an oversized PDF is reported as too large rather than cut.
func readUpload(mr *multipart.Reader) (regulations.Upload, error) {
	var (
		u       regulations.Upload
		hasFile bool
	)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return u, formError(err)
		}
		switch {
		case part.FormName() == "title":
			title, err := io.ReadAll(io.LimitReader(part, maxTitleBytes))
			if err != nil {
				return u, formError(err)
			}
			u.Title = strings.TrimSpace(string(title))
		case part.FormName() == "file" && part.FileName() != "" && !hasFile:
			data, err := io.ReadAll(io.LimitReader(part, regulations.MaxUploadBytes+1))
			if err != nil {
				return u, formError(err)
			}
			u.ContentType = part.Header.Get("Content-Type")
			u.Data = data
			hasFile = true
		}
		_ = part.Close()
	}
	if !hasFile {
		return u, errMissingFile
	}
	return u, nil
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return domain.ErrPayloadTooLarge
	}
	return errInvalidForm
}

func (s *Server) PreviewNotification(ctx context.Context, req api.PreviewNotificationRequestObject) (api.PreviewNotificationResponseObject, error) {
	insightID := strings.TrimSpace(req.Body.InsightId)
	if insightID == "" {
		return nil, errMissingInsight
	}
	caller, companyID, err := s.companyFor(ctx)
	if err != nil {
		return nil, err
	}
	receipt, err := s.Notifier.SendPreview(ctx, caller, companyID, insightID)
	if err != nil {
		return nil, err
	}
	return api.PreviewNotification200JSONResponse(toReceipt(receipt)), nil
}

// onboardingAbsent is the GET /api/onboarding answer before a profile exists.
type onboardingAbsent struct{}

func (onboardingAbsent) VisitGetOnboardingResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(nil)
}

func (s *Server) GetOnboarding(ctx context.Context, _ api.GetOnboardingRequestObject) (api.GetOnboardingResponseObject, error) {
	caller, ok := IdentityFrom(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	p, found, err := s.Profiles.Get(ctx, caller.Subject)
	if err != nil {
		return nil, err
	}
	if !found {
		return onboardingAbsent{}, nil
	}
	return api.GetOnboarding200JSONResponse(toProfile(p)), nil
}

// GetOnboardingDraft returns the saved profile, or the seeded starting point
// for a caller who has not onboarded yet.
func (s *Server) GetOnboardingDraft(ctx context.Context, _ api.GetOnboardingDraftRequestObject) (api.GetOnboardingDraftResponseObject, error) {
	caller, ok := IdentityFrom(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	p, err := s.Profiles.Draft(ctx, caller.Subject)
	if err != nil {
		return nil, err
	}
	return api.GetOnboardingDraft200JSONResponse(toProfile(p)), nil
}

func (s *Server) SaveOnboarding(ctx context.Context, req api.SaveOnboardingRequestObject) (api.SaveOnboardingResponseObject, error) {
	caller, ok := IdentityFrom(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if _, err := s.Profiles.Save(ctx, caller, fromProfile(req.Body)); err != nil {
		return nil, err
	}
	return api.SaveOnboarding200JSONResponse{Success: true}, nil
}
