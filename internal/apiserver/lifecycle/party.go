package lifecycle

import (
	"context"
	"time"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"go.uber.org/zap"
)

func applyOwnerFields(o *database.Owner, req *dto.PartyRequest) {
	o.Name = req.Name
	o.Father = req.Father
	o.Cnic = req.Cnic
	o.CnicExpiry = req.CnicExpiry
	o.PhoneNumber = req.PhoneNumber
	o.EmergencyNumber = req.EmergencyNumber
	o.Whatsapp = req.Whatsapp
	o.Email = req.Email
	o.CurrentAddress = req.CurrentAddress
	o.PermanentAddress = req.PermanentAddress
	o.JobTitle = req.JobTitle
	o.JobLocation = req.JobLocation
	o.JobOrganization = req.JobOrganization
	o.BankName = req.BankName
	o.BankTitle = req.BankTitle
	o.BankBranchAddress = req.BankBranchAddress
	o.BankAccountNumber = req.BankAccountNumber
	o.BankIbnNumber = req.BankIbnNumber
	o.Images = req.Images
	o.Remarks = req.Remarks
}

func applyTenantFields(t *database.Tenant, req *dto.PartyRequest) {
	t.Name = req.Name
	t.Father = req.Father
	t.Cnic = req.Cnic
	t.CnicExpiry = req.CnicExpiry
	t.PhoneNumber = req.PhoneNumber
	t.EmergencyNumber = req.EmergencyNumber
	t.Whatsapp = req.Whatsapp
	t.Email = req.Email
	t.CurrentAddress = req.CurrentAddress
	t.PermanentAddress = req.PermanentAddress
	t.JobTitle = req.JobTitle
	t.JobLocation = req.JobLocation
	t.JobOrganization = req.JobOrganization
	t.BankName = req.BankName
	t.BankTitle = req.BankTitle
	t.BankBranchAddress = req.BankBranchAddress
	t.BankAccountNumber = req.BankAccountNumber
	t.BankIbnNumber = req.BankIbnNumber
	t.Images = req.Images
	t.Remarks = req.Remarks
}

// ownerCnicTaken reports whether another owner already holds the cnic.
func (e *Engine) ownerCnicTaken(ctx context.Context, cnic, excludeID string) (bool, error) {
	existing, err := e.db.GetOwnerByCnic(ctx, cnic)
	if err != nil {
		if notFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}

func (e *Engine) ownerEmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	if email == "" {
		return false, nil
	}
	existing, err := e.db.GetOwnerByEmail(ctx, email)
	if err != nil {
		if notFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}

// CreateOwner registers an owner. Cnic and email must be unique across
// owners.
func (e *Engine) CreateOwner(ctx context.Context, req *dto.PartyRequest, actorID string) (*database.Owner, error) {
	owner := &database.Owner{CreatedBy: actorID}
	applyOwnerFields(owner, req)

	err := e.db.Transaction(ctx, func(ctx context.Context) error {
		if taken, err := e.ownerCnicTaken(ctx, req.Cnic, ""); err != nil {
			return err
		} else if taken {
			return i18n.ErrorCnicExists
		}
		if taken, err := e.ownerEmailTaken(ctx, req.Email, ""); err != nil {
			return err
		} else if taken {
			return i18n.ErrorEmailExists
		}
		return e.db.CreateOwner(ctx, owner)
	})
	if err != nil {
		if i18n.IsI18nError(err) {
			return nil, err
		}
		e.logger.Error("create owner failed", zap.Error(err))
		return nil, i18n.ErrInternalServer
	}
	return owner, nil
}

// UpdateOwner replaces an owner's profile. Array fields are replaced
// wholesale.
func (e *Engine) UpdateOwner(ctx context.Context, id string, req *dto.PartyRequest) (*database.Owner, error) {
	var owner *database.Owner
	err := e.db.Transaction(ctx, func(ctx context.Context) error {
		var err error
		owner, err = e.db.GetOwnerByID(ctx, id)
		if err != nil {
			if notFound(err) {
				return i18n.ErrorOwnerNotFound
			}
			return err
		}
		if taken, err := e.ownerCnicTaken(ctx, req.Cnic, id); err != nil {
			return err
		} else if taken {
			return i18n.ErrorCnicExists
		}
		if taken, err := e.ownerEmailTaken(ctx, req.Email, id); err != nil {
			return err
		} else if taken {
			return i18n.ErrorEmailExists
		}
		applyOwnerFields(owner, req)
		return e.db.UpdateOwner(ctx, owner)
	})
	if err != nil {
		if i18n.IsI18nError(err) {
			return nil, err
		}
		e.logger.Error("update owner failed", zap.String("id", id), zap.Error(err))
		return nil, i18n.ErrInternalServer
	}
	return owner, nil
}

// UpdateOwnerCnic renews an owner's cnic expiry. Past dates are rejected.
func (e *Engine) UpdateOwnerCnic(ctx context.Context, id string, expiry time.Time) (*database.Owner, error) {
	if !expiry.After(time.Now()) {
		return nil, i18n.ErrorCnicExpiryPast
	}
	owner, err := e.db.GetOwnerByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, i18n.ErrorOwnerNotFound
		}
		return nil, i18n.ErrInternalServer
	}
	owner.CnicExpiry = expiry
	if err := e.db.UpdateOwner(ctx, owner); err != nil {
		e.logger.Error("update owner cnic failed", zap.String("id", id), zap.Error(err))
		return nil, i18n.ErrInternalServer
	}
	return owner, nil
}

func (e *Engine) tenantCnicTaken(ctx context.Context, cnic, excludeID string) (bool, error) {
	existing, err := e.db.GetTenantByCnic(ctx, cnic)
	if err != nil {
		if notFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}

func (e *Engine) tenantEmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	if email == "" {
		return false, nil
	}
	existing, err := e.db.GetTenantByEmail(ctx, email)
	if err != nil {
		if notFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}

// CreateTenant registers a tenant with the same uniqueness rules as owners.
func (e *Engine) CreateTenant(ctx context.Context, req *dto.PartyRequest, actorID string) (*database.Tenant, error) {
	tenant := &database.Tenant{CreatedBy: actorID}
	applyTenantFields(tenant, req)

	err := e.db.Transaction(ctx, func(ctx context.Context) error {
		if taken, err := e.tenantCnicTaken(ctx, req.Cnic, ""); err != nil {
			return err
		} else if taken {
			return i18n.ErrorCnicExists
		}
		if taken, err := e.tenantEmailTaken(ctx, req.Email, ""); err != nil {
			return err
		} else if taken {
			return i18n.ErrorTenantEmailTaken
		}
		return e.db.CreateTenant(ctx, tenant)
	})
	if err != nil {
		if i18n.IsI18nError(err) {
			return nil, err
		}
		e.logger.Error("create tenant failed", zap.Error(err))
		return nil, i18n.ErrInternalServer
	}
	return tenant, nil
}

// UpdateTenant replaces a tenant's profile.
func (e *Engine) UpdateTenant(ctx context.Context, id string, req *dto.PartyRequest) (*database.Tenant, error) {
	var tenant *database.Tenant
	err := e.db.Transaction(ctx, func(ctx context.Context) error {
		var err error
		tenant, err = e.db.GetTenantByID(ctx, id)
		if err != nil {
			if notFound(err) {
				return i18n.ErrorTenantNotFound
			}
			return err
		}
		if taken, err := e.tenantCnicTaken(ctx, req.Cnic, id); err != nil {
			return err
		} else if taken {
			return i18n.ErrorCnicExists
		}
		if taken, err := e.tenantEmailTaken(ctx, req.Email, id); err != nil {
			return err
		} else if taken {
			return i18n.ErrorTenantEmailTaken
		}
		applyTenantFields(tenant, req)
		return e.db.UpdateTenant(ctx, tenant)
	})
	if err != nil {
		if i18n.IsI18nError(err) {
			return nil, err
		}
		e.logger.Error("update tenant failed", zap.String("id", id), zap.Error(err))
		return nil, i18n.ErrInternalServer
	}
	return tenant, nil
}

// UpdateTenantCnic renews a tenant's cnic expiry. Past dates are rejected.
func (e *Engine) UpdateTenantCnic(ctx context.Context, id string, expiry time.Time) (*database.Tenant, error) {
	if !expiry.After(time.Now()) {
		return nil, i18n.ErrorCnicExpiryPast
	}
	tenant, err := e.db.GetTenantByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, i18n.ErrorTenantNotFound
		}
		return nil, i18n.ErrInternalServer
	}
	tenant.CnicExpiry = expiry
	if err := e.db.UpdateTenant(ctx, tenant); err != nil {
		e.logger.Error("update tenant cnic failed", zap.String("id", id), zap.Error(err))
		return nil, i18n.ErrInternalServer
	}
	return tenant, nil
}

// CreateAgent registers a commission agent.
func (e *Engine) CreateAgent(ctx context.Context, req *dto.AgentRequest, actorID string) (*database.Agent, error) {
	agent := &database.Agent{Name: req.Name, CreatedBy: actorID}
	if err := e.db.CreateAgent(ctx, agent); err != nil {
		e.logger.Error("create agent failed", zap.Error(err))
		return nil, i18n.ErrInternalServer
	}
	return agent, nil
}
