package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
	"github.com/pattarad/rankha-pos/pkg/keylock"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// ShiftService handles cash-drawer shift lifecycle. Open and close for the
// same shop are serialized through a per-shop lock, so two cashiers racing to
// open cannot both get a shift, and shift numbers on one day never collide.
type ShiftService struct {
	shiftRepo repository.ShiftRepository
	saleRepo  repository.SaleRepository
	locks     *keylock.KeyLock
}

// NewShiftService creates a new shift service
func NewShiftService(shiftRepo repository.ShiftRepository, saleRepo repository.SaleRepository, locks *keylock.KeyLock) *ShiftService {
	return &ShiftService{
		shiftRepo: shiftRepo,
		saleRepo:  saleRepo,
		locks:     locks,
	}
}

// OpenShiftInput represents the open shift input
type OpenShiftInput struct {
	UserID      uuid.UUID
	OpeningCash float64
	Notes       *string
}

// CloseShiftInput represents the close shift input
type CloseShiftInput struct {
	ActualCash float64
	Notes      *string
}

// OpenShift opens a new shift. At most one shift per shop can be open, even
// one left over from a previous day; it must be closed first.
func (s *ShiftService) OpenShift(ctx context.Context, shopID uuid.UUID, input *OpenShiftInput) (*entity.Shift, error) {
	if input.OpeningCash < 0 {
		return nil, apperror.NewValidationError("Opening cash cannot be negative")
	}

	var shift *entity.Shift
	err := s.locks.WithLock("shift:"+shopID.String(), func() error {
		open, err := s.shiftRepo.GetOpen(ctx, shopID)
		if err != nil {
			return err
		}
		if open != nil {
			return apperror.NewConflictError("A shift is already open")
		}

		now := time.Now()
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		maxNumber, err := s.shiftRepo.MaxShiftNumber(ctx, shopID, day)
		if err != nil {
			return err
		}

		openingCash := int64(input.OpeningCash*100 + 0.5)
		shift = &entity.Shift{
			ShopID:      shopID,
			UserID:      input.UserID,
			ShiftNumber: maxNumber + 1,
			ShiftDate:   day,
			StartTime:   now,
			Status:      enum.ShiftOpen,
			OpeningCash: openingCash,
			// Until sales happen the drawer should hold exactly the float.
			ExpectedCash: openingCash,
			Notes:        input.Notes,
		}
		return s.shiftRepo.Create(ctx, shift)
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// CloseShift closes the shop's open shift. Sales figures are recomputed from
// the sales table over [start, now), never taken from running counters, so a
// sale that slipped in during closing is still counted. Expected cash is the
// opening float plus cash sales; credit sales never enter the drawer.
func (s *ShiftService) CloseShift(ctx context.Context, shopID uuid.UUID, input *CloseShiftInput) (*entity.Shift, error) {
	if input.ActualCash < 0 {
		return nil, apperror.NewValidationError("Actual cash cannot be negative")
	}

	var shift *entity.Shift
	err := s.locks.WithLock("shift:"+shopID.String(), func() error {
		open, err := s.shiftRepo.GetOpen(ctx, shopID)
		if err != nil {
			return err
		}
		if open == nil {
			return apperror.NewConflictError("No open shift")
		}

		now := time.Now()
		summary, err := s.saleRepo.SummarizeWindow(ctx, shopID, open.StartTime, now)
		if err != nil {
			return err
		}

		actualCash := int64(input.ActualCash*100 + 0.5)
		expectedCash := open.OpeningCash + summary.CashSales

		open.EndTime = &now
		open.Status = enum.ShiftClosed
		open.ClosingCash = &actualCash
		open.ActualCash = &actualCash
		open.ExpectedCash = expectedCash
		open.CashDifference = actualCash - expectedCash
		open.TotalSales = summary.TotalSales
		open.CashSales = summary.CashSales
		open.CreditSales = summary.CreditSales
		open.SaleCount = summary.SaleCount
		if input.Notes != nil {
			open.Notes = input.Notes
		}

		if err := s.shiftRepo.Update(ctx, open); err != nil {
			return err
		}
		shift = open
		return nil
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// GetCurrentShift returns the open shift with live sales figures, or the
// conflict error when none is open.
func (s *ShiftService) GetCurrentShift(ctx context.Context, shopID uuid.UUID) (*entity.Shift, error) {
	open, err := s.shiftRepo.GetOpen(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, apperror.NewNotFoundError("Open shift")
	}

	summary, err := s.saleRepo.SummarizeWindow(ctx, shopID, open.StartTime, time.Now())
	if err != nil {
		return nil, err
	}
	open.TotalSales = summary.TotalSales
	open.CashSales = summary.CashSales
	open.CreditSales = summary.CreditSales
	open.SaleCount = summary.SaleCount
	open.ExpectedCash = open.OpeningCash + summary.CashSales
	return open, nil
}

// GetShift retrieves a shift by ID
func (s *ShiftService) GetShift(ctx context.Context, shopID, id uuid.UUID) (*entity.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Shift")
	}
	return shift, nil
}

// ListShifts returns past shifts, newest first
func (s *ShiftService) ListShifts(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Shift], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	shifts, total, err := s.shiftRepo.List(ctx, shopID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(shifts,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
