// Package lease keeps unit occupancy, tenant occupancy and contract status
// consistent. Every operation runs in one database transaction.
package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/auth"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/amoylab/phongtro/pkg/metrics"
	"github.com/amoylab/phongtro/pkg/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	reasonMovedOut   = "tenant moved out"
	reasonReassigned = "tenant reassigned to another unit"
)

type Service struct {
	db      database.Database
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(db database.Database, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:      db,
		metrics: m,
		logger:  logger.Named("lease"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func finish(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func id64(id uint) int64 {
	return int64(id)
}

func (s *Service) unit(ctx context.Context, id uint) (*database.Unit, error) {
	u, err := s.db.GetUnitByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, i18n.ErrorUnitNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) tenant(ctx context.Context, id uint) (*database.Tenant, error) {
	t, err := s.db.GetTenantByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, i18n.ErrorTenantNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) contract(ctx context.Context, actor auth.Actor, id uint) (*database.Contract, error) {
	c, err := s.db.GetContractByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, i18n.ErrorContractNotFound
		}
		return nil, err
	}
	if !actor.CanManage(c.LandlordID) {
		return nil, i18n.ErrorContractPermission
	}
	return c, nil
}

// claim occupies an available unit for the tenant
func (s *Service) claim(ctx context.Context, unitID, tenantID uint) error {
	ok, err := s.db.ClaimUnit(ctx, unitID, tenantID)
	if err != nil {
		return err
	}
	if !ok {
		s.metrics.OccupancyConflict()
		return i18n.ErrorUnitNotAvailable
	}
	return nil
}

// house moves the tenant into unitID if the tenant still lives in from
func (s *Service) house(ctx context.Context, t *database.Tenant, unitID uint, from *uint, at time.Time) error {
	ok, err := s.db.ClaimTenant(ctx, t.ID, unitID, from, at)
	if err != nil {
		return err
	}
	if !ok {
		s.metrics.OccupancyConflict()
		return i18n.ErrorTenantAlreadyHoused
	}
	t.Status = database.TenantActive
	t.CurrentUnitID = &unitID
	t.MoveInDate = &at
	t.MoveOutDate = nil
	return nil
}

func (s *Service) openContracts(ctx context.Context, filter database.ContractFilter) ([]*database.Contract, error) {
	filter.Statuses = database.OpenContractStatuses
	return s.db.FindContracts(ctx, filter)
}

// terminate closes an open contract without touching unit or tenant
func (s *Service) terminate(ctx context.Context, c *database.Contract, reason string, at time.Time) error {
	if !CanTransition(c.Status, database.ContractTerminated) {
		return i18n.ErrorInvalidContractTransition.
			WithParam("From", c.Status).
			WithParam("To", database.ContractTerminated)
	}
	c.Status = database.ContractTerminated
	c.TerminatedDate = &at
	c.TerminationReason = reason
	return s.db.UpdateContract(ctx, c)
}

func (s *Service) contractNumber(ctx context.Context, unit *database.Unit, start time.Time) (string, error) {
	base := fmt.Sprintf("HD-%s-%s-%s", unit.Building, unit.UnitNumber, start.Format("200601"))
	number := base
	for n := 2; ; n++ {
		exists, err := s.db.ContractNumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
		number = fmt.Sprintf("%s-%d", base, n)
	}
}

// CreateContractInput describes a new lease. Rent and deposit default to the
// unit's prices.
type CreateContractInput struct {
	UnitID        uint
	TenantID      uint
	StartDate     time.Time
	EndDate       time.Time
	RentAmount    *int64
	DepositAmount *int64
	Utilities     database.ContractUtilities
	Terms         string
}

// CreateContract drafts a contract and moves the tenant into the unit. A
// tenant already placed in the unit without a contract gets one in place.
func (s *Service) CreateContract(ctx context.Context, actor auth.Actor, in CreateContractInput) (c *database.Contract, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceLease, "lease.CreateContract",
		attribute.Int64(cnst.AttrUnitID, id64(in.UnitID)),
		attribute.Int64(cnst.AttrTenantID, id64(in.TenantID)),
		attribute.Int64(cnst.AttrActorID, id64(actor.UserID)))
	defer func() { finish(span, err) }()

	if in.StartDate.IsZero() || !in.EndDate.After(in.StartDate) {
		return nil, i18n.ErrorInvalidContractDates
	}
	if (in.RentAmount != nil && *in.RentAmount < 0) || (in.DepositAmount != nil && *in.DepositAmount < 0) {
		return nil, i18n.ErrorNegativeAmount
	}
	start, end := in.StartDate.UTC(), in.EndDate.UTC()

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		unit, err := s.unit(ctx, in.UnitID)
		if err != nil {
			return err
		}
		if !actor.CanManage(unit.LandlordID) {
			return i18n.ErrorUnitPermission
		}
		tenant, err := s.tenant(ctx, in.TenantID)
		if err != nil {
			return err
		}
		placed := tenant.CurrentUnitID != nil && *tenant.CurrentUnitID == unit.ID &&
			unit.CurrentTenantID != nil && *unit.CurrentTenantID == tenant.ID
		if !placed {
			if unit.Status != database.UnitAvailable {
				s.metrics.OccupancyConflict()
				return i18n.ErrorUnitNotAvailable
			}
			if tenant.CurrentUnitID != nil {
				return i18n.ErrorTenantAlreadyHoused
			}
		}
		open, err := s.openContracts(ctx, database.ContractFilter{TenantID: tenant.ID})
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return i18n.ErrorTenantHasActiveContract
		}

		moveIn := start
		if placed {
			if tenant.MoveInDate != nil {
				moveIn = *tenant.MoveInDate
			}
		} else if err := s.claim(ctx, unit.ID, tenant.ID); err != nil {
			return err
		}
		if err := s.house(ctx, tenant, unit.ID, tenant.CurrentUnitID, moveIn); err != nil {
			return err
		}

		number, err := s.contractNumber(ctx, unit, start)
		if err != nil {
			return err
		}
		c = &database.Contract{
			ContractNumber: number,
			UnitID:         unit.ID,
			TenantID:       tenant.ID,
			LandlordID:     unit.LandlordID,
			StartDate:      start,
			EndDate:        end,
			RentAmount:     unit.RentPrice,
			DepositAmount:  unit.DepositAmount,
			Utilities:      in.Utilities,
			Terms:          in.Terms,
			Status:         database.ContractDraft,
			CreatedBy:      actor.UserID,
		}
		if in.RentAmount != nil {
			c.RentAmount = *in.RentAmount
		}
		if in.DepositAmount != nil {
			c.DepositAmount = *in.DepositAmount
		}
		if err := s.db.CreateContract(ctx, c); err != nil {
			if database.IsDuplicate(err) {
				return i18n.ErrorUnitNotAvailable
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ContractEvent("created")
	s.logger.Info("contract created",
		zap.Uint("contract_id", c.ID),
		zap.String("number", c.ContractNumber),
		zap.Uint("unit_id", c.UnitID),
		zap.Uint("tenant_id", c.TenantID))
	return c, nil
}

// SignContract activates a draft contract. Signing an active contract
// returns it unchanged.
func (s *Service) SignContract(ctx context.Context, actor auth.Actor, id uint) (c *database.Contract, changed bool, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceLease, "lease.SignContract",
		attribute.Int64(cnst.AttrContractID, id64(id)),
		attribute.Int64(cnst.AttrActorID, id64(actor.UserID)))
	defer func() { finish(span, err) }()

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		c, err = s.contract(ctx, actor, id)
		if err != nil {
			return err
		}
		if c.Status == database.ContractActive {
			return nil
		}
		if !CanTransition(c.Status, database.ContractActive) {
			return i18n.ErrorInvalidContractTransition.
				WithParam("From", c.Status).
				WithParam("To", database.ContractActive)
		}
		now := s.now()
		c.Status = database.ContractActive
		c.SignedDate = &now
		changed = true
		return s.db.UpdateContract(ctx, c)
	})
	if err != nil {
		return nil, false, err
	}
	if changed {
		s.metrics.ContractEvent("signed")
	}
	return c, changed, nil
}

// TerminateContract ends a contract, frees its unit and marks its tenant
// inactive. Terminating a terminated contract returns it unchanged.
func (s *Service) TerminateContract(ctx context.Context, actor auth.Actor, id uint, reason string) (c *database.Contract, changed bool, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceLease, "lease.TerminateContract",
		attribute.Int64(cnst.AttrContractID, id64(id)),
		attribute.Int64(cnst.AttrActorID, id64(actor.UserID)))
	defer func() { finish(span, err) }()

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		c, err = s.contract(ctx, actor, id)
		if err != nil {
			return err
		}
		if c.Status == database.ContractTerminated {
			return nil
		}
		now := s.now()
		if err := s.terminate(ctx, c, reason, now); err != nil {
			return err
		}
		if err := s.db.ReleaseUnit(ctx, c.UnitID, c.TenantID); err != nil {
			return err
		}

		tenant, err := s.tenant(ctx, c.TenantID)
		if err != nil {
			return err
		}
		tenant.Status = database.TenantInactive
		tenant.MoveOutDate = &now
		if tenant.CurrentUnitID != nil && *tenant.CurrentUnitID == c.UnitID {
			tenant.CurrentUnitID = nil
		}
		changed = true
		return s.db.UpdateTenant(ctx, tenant)
	})
	if err != nil {
		return nil, false, err
	}
	if changed {
		s.metrics.ContractEvent("terminated")
		s.logger.Info("contract terminated", zap.Uint("contract_id", c.ID), zap.String("reason", reason))
	}
	return c, changed, nil
}

// CreateTenantInput registers a renting profile for a tenant-role user,
// optionally moving them straight into a unit.
type CreateTenantInput struct {
	UserID           uint
	IdentityCard     string
	Phone            string
	EmergencyContact database.EmergencyContact
	Documents        []string
	CurrentUnitID    uint
	MoveInDate       *time.Time
}

func (s *Service) CreateTenant(ctx context.Context, actor auth.Actor, in CreateTenantInput) (t *database.Tenant, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceLease, "lease.CreateTenant",
		attribute.Int64(cnst.AttrActorID, id64(actor.UserID)))
	defer func() { finish(span, err) }()

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		user, err := s.db.GetUserByID(ctx, in.UserID)
		if err != nil {
			if database.IsNotFound(err) {
				return i18n.ErrorUserNotFound
			}
			return err
		}
		if user.Role != database.RoleTenant {
			return i18n.ErrorUserNotTenantRole
		}
		if _, err := s.db.GetTenantByUserID(ctx, user.ID); err == nil {
			return i18n.ErrorTenantExists
		} else if !database.IsNotFound(err) {
			return err
		}
		exists, err := s.db.IdentityCardExists(ctx, in.IdentityCard, 0)
		if err != nil {
			return err
		}
		if exists {
			return i18n.ErrorIdentityCardExists
		}

		t = &database.Tenant{
			UserID:           user.ID,
			IdentityCard:     in.IdentityCard,
			Phone:            in.Phone,
			EmergencyContact: in.EmergencyContact,
			Status:           database.TenantActive,
			Documents:        in.Documents,
		}
		if t.Phone == "" {
			t.Phone = user.Phone
		}
		if err := s.db.CreateTenant(ctx, t); err != nil {
			if database.IsDuplicate(err) {
				return i18n.ErrorTenantExists
			}
			return err
		}
		if in.CurrentUnitID == 0 {
			return nil
		}
		return s.moveIn(ctx, actor, t, in.CurrentUnitID, nil, in.MoveInDate)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// moveIn claims unitID for a tenant last seen in from and saves the tenant
func (s *Service) moveIn(ctx context.Context, actor auth.Actor, t *database.Tenant, unitID uint, from *uint, at *time.Time) error {
	unit, err := s.unit(ctx, unitID)
	if err != nil {
		return err
	}
	if !actor.CanManage(unit.LandlordID) {
		return i18n.ErrorUnitPermission
	}
	if err := s.claim(ctx, unit.ID, t.ID); err != nil {
		return err
	}
	moveIn := s.now()
	if at != nil {
		moveIn = at.UTC()
	}
	if err := s.house(ctx, t, unit.ID, from, moveIn); err != nil {
		return err
	}
	return s.db.UpdateTenant(ctx, t)
}

// vacate frees the tenant's current unit and terminates the tenant's open
// contracts on it
func (s *Service) vacate(ctx context.Context, t *database.Tenant, reason string, at time.Time) error {
	if t.CurrentUnitID == nil {
		return nil
	}
	unitID := *t.CurrentUnitID
	if err := s.db.ReleaseUnit(ctx, unitID, t.ID); err != nil {
		return err
	}
	open, err := s.openContracts(ctx, database.ContractFilter{TenantID: t.ID, UnitID: unitID})
	if err != nil {
		return err
	}
	for _, c := range open {
		if err := s.terminate(ctx, c, reason, at); err != nil {
			return err
		}
		s.metrics.ContractEvent("terminated")
	}
	t.CurrentUnitID = nil
	return nil
}

// TenantPatch carries the tenant fields to change. CurrentUnitID set to 0
// unassigns the tenant.
type TenantPatch struct {
	IdentityCard     *string
	Phone            *string
	EmergencyContact *database.EmergencyContact
	Documents        *[]string
	Status           *database.TenantStatus
	CurrentUnitID    *uint
	MoveInDate       *time.Time
	MoveOutDate      *time.Time
}

// UpdateTenant applies a profile patch and the occupancy changes it implies.
// A non-active status vacates the tenant's unit and terminates the open
// contract; a changed unit vacates the old one and claims the new one.
func (s *Service) UpdateTenant(ctx context.Context, actor auth.Actor, id uint, patch TenantPatch) (t *database.Tenant, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceLease, "lease.UpdateTenant",
		attribute.Int64(cnst.AttrTenantID, id64(id)),
		attribute.Int64(cnst.AttrActorID, id64(actor.UserID)))
	defer func() { finish(span, err) }()

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, i18n.ErrorInvalidTenantStatus
	}

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		t, err = s.tenant(ctx, id)
		if err != nil {
			return err
		}

		if patch.IdentityCard != nil && *patch.IdentityCard != t.IdentityCard {
			exists, err := s.db.IdentityCardExists(ctx, *patch.IdentityCard, t.ID)
			if err != nil {
				return err
			}
			if exists {
				return i18n.ErrorIdentityCardExists
			}
			t.IdentityCard = *patch.IdentityCard
		}
		if patch.Phone != nil {
			t.Phone = *patch.Phone
		}
		if patch.EmergencyContact != nil {
			t.EmergencyContact = *patch.EmergencyContact
		}
		if patch.Documents != nil {
			t.Documents = *patch.Documents
		}
		if patch.MoveInDate != nil {
			at := patch.MoveInDate.UTC()
			t.MoveInDate = &at
		}
		if patch.MoveOutDate != nil {
			at := patch.MoveOutDate.UTC()
			t.MoveOutDate = &at
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}

		now := s.now()
		if t.Status != database.TenantActive {
			if t.CurrentUnitID != nil {
				if err := s.vacate(ctx, t, reasonMovedOut, now); err != nil {
					return err
				}
				if patch.MoveOutDate == nil {
					t.MoveOutDate = &now
				}
			}
			if t.Status == database.TenantMovedOut && t.MoveOutDate == nil {
				t.MoveOutDate = &now
			}
			return s.db.UpdateTenant(ctx, t)
		}

		if patch.CurrentUnitID == nil || (t.CurrentUnitID != nil && *t.CurrentUnitID == *patch.CurrentUnitID) {
			return s.db.UpdateTenant(ctx, t)
		}
		if t.CurrentUnitID == nil && *patch.CurrentUnitID == 0 {
			return s.db.UpdateTenant(ctx, t)
		}

		from := t.CurrentUnitID
		if err := s.vacate(ctx, t, reasonReassigned, now); err != nil {
			return err
		}
		if *patch.CurrentUnitID == 0 {
			t.MoveOutDate = &now
			return s.db.UpdateTenant(ctx, t)
		}
		open, err := s.openContracts(ctx, database.ContractFilter{TenantID: t.ID})
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return i18n.ErrorTenantHasActiveContract
		}
		return s.moveIn(ctx, actor, t, *patch.CurrentUnitID, from, patch.MoveInDate)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MarkMovedOut moves the tenant out of their unit at the given date, or now
func (s *Service) MarkMovedOut(ctx context.Context, actor auth.Actor, id uint, at *time.Time) (*database.Tenant, error) {
	status := database.TenantMovedOut
	if at == nil {
		now := s.now()
		at = &now
	}
	return s.UpdateTenant(ctx, actor, id, TenantPatch{Status: &status, MoveOutDate: at})
}

// DeleteTenant hard-deletes a tenant without open contracts. Contracts and
// invoices stay as history; maintenance requests are removed.
func (s *Service) DeleteTenant(ctx context.Context, actor auth.Actor, id uint) (t *database.Tenant, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceLease, "lease.DeleteTenant",
		attribute.Int64(cnst.AttrTenantID, id64(id)),
		attribute.Int64(cnst.AttrActorID, id64(actor.UserID)))
	defer func() { finish(span, err) }()

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		t, err = s.tenant(ctx, id)
		if err != nil {
			return err
		}
		open, err := s.openContracts(ctx, database.ContractFilter{TenantID: t.ID})
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return i18n.ErrorTenantHasActiveContract
		}
		if t.CurrentUnitID != nil {
			if err := s.db.ReleaseUnit(ctx, *t.CurrentUnitID, t.ID); err != nil {
				return err
			}
		}
		if err := s.db.DeleteMaintenanceByTenant(ctx, t.ID); err != nil {
			return err
		}
		return s.db.DeleteTenant(ctx, t.ID)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("tenant deleted", zap.Uint("tenant_id", t.ID))
	return t, nil
}

// UnitPatch carries the unit fields to change
type UnitPatch struct {
	UnitNumber    *string
	Building      *string
	Floor         *int
	SquareMeters  *float64
	RoomType      *database.RoomType
	RentPrice     *int64
	DepositAmount *int64
	Amenities     *[]string
	Status        *database.UnitStatus
	Description   *string
}

// UpdateUnit edits a unit. Occupancy is owned by contracts and tenants, so
// a unit cannot be set occupied here, nor moved out of occupied.
func (s *Service) UpdateUnit(ctx context.Context, actor auth.Actor, id uint, patch UnitPatch) (u *database.Unit, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceLease, "lease.UpdateUnit",
		attribute.Int64(cnst.AttrUnitID, id64(id)),
		attribute.Int64(cnst.AttrActorID, id64(actor.UserID)))
	defer func() { finish(span, err) }()

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, i18n.ErrorInvalidUnitStatus
	}
	if patch.RoomType != nil && !patch.RoomType.Valid() {
		return nil, i18n.ErrorInvalidRoomType
	}
	if (patch.RentPrice != nil && *patch.RentPrice < 0) || (patch.DepositAmount != nil && *patch.DepositAmount < 0) {
		return nil, i18n.ErrorNegativeAmount
	}

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		u, err = s.unit(ctx, id)
		if err != nil {
			return err
		}
		if !actor.CanManage(u.LandlordID) {
			return i18n.ErrorUnitPermission
		}
		if patch.Status != nil && *patch.Status != u.Status {
			if *patch.Status == database.UnitOccupied || u.Status == database.UnitOccupied {
				return i18n.ErrorUnitStatusManagedByLease
			}
			ok, err := s.db.SetUnitStatus(ctx, u.ID, *patch.Status)
			if err != nil {
				return err
			}
			if !ok {
				s.metrics.OccupancyConflict()
				return i18n.ErrorUnitStatusManagedByLease
			}
		}
		if patch.UnitNumber != nil {
			u.UnitNumber = *patch.UnitNumber
		}
		if patch.Building != nil {
			u.Building = *patch.Building
		}
		if patch.Floor != nil {
			u.Floor = *patch.Floor
		}
		if patch.SquareMeters != nil {
			u.SquareMeters = *patch.SquareMeters
		}
		if patch.RoomType != nil {
			u.RoomType = *patch.RoomType
		}
		if patch.RentPrice != nil {
			u.RentPrice = *patch.RentPrice
		}
		if patch.DepositAmount != nil {
			u.DepositAmount = *patch.DepositAmount
		}
		if patch.Amenities != nil {
			u.Amenities = *patch.Amenities
		}
		if patch.Description != nil {
			u.Description = *patch.Description
		}
		if err := s.db.UpdateUnit(ctx, u); err != nil {
			if database.IsDuplicate(err) {
				return i18n.ErrorUnitExists
			}
			return err
		}
		u, err = s.unit(ctx, u.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUnit refuses while the unit is let. A soft delete parks the unit in
// maintenance; a hard delete (admin only) removes it with its contracts,
// invoices and maintenance requests.
func (s *Service) DeleteUnit(ctx context.Context, actor auth.Actor, id uint, hard bool) (u *database.Unit, err error) {
	ctx, span := trace.Start(ctx, cnst.TraceLease, "lease.DeleteUnit",
		attribute.Int64(cnst.AttrUnitID, id64(id)),
		attribute.Bool("unit.hard_delete", hard))
	defer func() { finish(span, err) }()

	if hard && !actor.IsAdmin() {
		return nil, i18n.ErrorRoleNotAllowed
	}

	err = s.db.Transaction(ctx, func(ctx context.Context) error {
		u, err = s.unit(ctx, id)
		if err != nil {
			return err
		}
		if !actor.CanManage(u.LandlordID) {
			return i18n.ErrorUnitPermission
		}
		if u.CurrentTenantID != nil {
			return i18n.ErrorUnitOccupied
		}
		open, err := s.openContracts(ctx, database.ContractFilter{UnitID: u.ID})
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return i18n.ErrorUnitHasOpenContract
		}

		if !hard {
			ok, err := s.db.SetUnitStatus(ctx, u.ID, database.UnitMaintenance)
			if err != nil {
				return err
			}
			if !ok {
				s.metrics.OccupancyConflict()
				return i18n.ErrorUnitOccupied
			}
			u.Status = database.UnitMaintenance
			return nil
		}
		if err := s.db.DeleteInvoicesByUnit(ctx, u.ID); err != nil {
			return err
		}
		if err := s.db.DeleteContractsByUnit(ctx, u.ID); err != nil {
			return err
		}
		if err := s.db.DeleteMaintenanceByUnit(ctx, u.ID); err != nil {
			return err
		}
		return s.db.DeleteUnit(ctx, u.ID)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("unit deleted", zap.Uint("unit_id", u.ID), zap.Bool("hard", hard))
	return u, nil
}
