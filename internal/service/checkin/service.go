package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/domain/person"
	"github.com/andinaops/attendance-backend-go/internal/domain/site"
	accesstokenService "github.com/andinaops/attendance-backend-go/internal/service/accesstoken"
	"github.com/andinaops/attendance-backend-go/internal/service/evidence"
	"github.com/andinaops/attendance-backend-go/internal/service/geofence"
	"github.com/oklog/ulid/v2"
)

type CheckinServiceImpl struct {
	personRepo      person.PersonRepository
	siteRepo        site.SiteRepository
	markRepo        attendance.MarkRepository
	geofence        *geofence.Validator
	tokenService    accesstokenService.Service
	evidenceService evidence.Service
	now             func() time.Time
}

func NewCheckinService(
	personRepo person.PersonRepository,
	siteRepo site.SiteRepository,
	markRepo attendance.MarkRepository,
	geofenceValidator *geofence.Validator,
	tokenService accesstokenService.Service,
	evidenceService evidence.Service,
) attendance.CheckinService {
	return &CheckinServiceImpl{
		personRepo:      personRepo,
		siteRepo:        siteRepo,
		markRepo:        markRepo,
		geofence:        geofenceValidator,
		tokenService:    tokenService,
		evidenceService: evidenceService,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// CheckIn implements attendance.CheckinService.
//
// The pipeline is a linear sequence of gates; the first violation is
// terminal for the request and nothing earlier is rolled back. Evidence
// is uploaded strictly before the mark insert so a persisted mark never
// references missing evidence. The reverse inconsistency (an uploaded
// file whose insert then failed) is accepted and left to an out-of-band
// cleanup job.
func (s *CheckinServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}
	nowUTC := s.now()

	personData, err := s.personRepo.GetByID(ctx, req.PersonID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	if !personData.Active {
		return attendance.CheckInResponse{}, person.ErrPersonInactive
	}
	// Promoters check in through a separate workflow; unknown roles fail
	// closed rather than defaulting to staff.
	if !personData.Role.CanCheckIn() {
		return attendance.CheckInResponse{}, person.ErrRoleNotAllowed
	}

	siteData, err := s.siteRepo.GetByID(ctx, req.SiteID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	distance, err := s.geofence.Admit(siteData, req.Latitude, req.Longitude, req.AccuracyMeters)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	if err := s.tokenService.Validate(ctx, siteData.ID, req.QRCode, nowUTC); err != nil {
		return attendance.CheckInResponse{}, err
	}

	markType := attendance.ParseMarkType(req.Type)
	evidencePath, err := s.evidenceService.StoreCheckinEvidence(ctx, siteData.ID, personData.ID, nowUTC, string(markType), req.SelfieBase64)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("%w: %v", attendance.ErrEvidenceUploadFailed, err)
	}

	mark := attendance.Mark{
		ID:             ulid.Make().String(),
		PersonID:       personData.ID,
		SiteID:         siteData.ID,
		Type:           markType,
		ObservedAt:     nowUTC,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
		DeviceID:       req.DeviceID,
		EvidencePath:   &evidencePath,
	}

	created, err := s.markRepo.Create(ctx, mark)
	if err != nil {
		// The evidence file is now orphaned; accepted, reconciled offline.
		return attendance.CheckInResponse{}, fmt.Errorf("%w: %v", attendance.ErrMarkInsertFailed, err)
	}

	return attendance.CheckInResponse{
		MarkID:         created.ID,
		DistanceMeters: distance,
		RecordedAt:     created.ObservedAt.Format(time.RFC3339),
	}, nil
}
