package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/handler/http/response"
)

type CheckinHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
}

type checkinHandlerImpl struct {
	checkinService attendance.CheckinService
}

func NewCheckinHandler(checkinService attendance.CheckinService) CheckinHandler {
	return &checkinHandlerImpl{
		checkinService: checkinService,
	}
}

// CheckIn implements CheckinHandler.
func (h *checkinHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-in body", "error", err)
		response.BadRequest(w, "bad_json", "Request body is not valid JSON", nil)
		return
	}

	result, err := h.checkinService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
