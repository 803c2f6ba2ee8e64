package lifecycle

import (
	"context"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/common/cnst"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"go.uber.org/zap"
)

// validateContractIDs checks that every referenced id is well-formed. The
// whole operation aborts on the first malformed id, before any write.
func validateContractIDs(req *dto.ContractRequest) error {
	if !validID(req.Inventory) {
		return i18n.ErrorInvalidInventoryID
	}
	if len(req.Owners) == 0 || len(req.Tenants) == 0 {
		return i18n.ErrorContractPartiesNeeded
	}
	for _, id := range req.Owners {
		if !validID(id) {
			return i18n.ErrorInvalidOwnerID.WithParam("ID", id)
		}
	}
	for _, id := range req.Tenants {
		if !validID(id) {
			return i18n.ErrorInvalidTenantID.WithParam("ID", id)
		}
	}
	if req.Agent != "" && !validID(req.Agent) {
		return i18n.ErrorInvalidAgentID
	}
	return nil
}

// resolveParties verifies that every referenced owner, tenant and agent
// exists. Runs inside the caller's transaction.
func (e *Engine) resolveParties(ctx context.Context, req *dto.ContractRequest) error {
	for _, id := range req.Owners {
		if _, err := e.db.GetOwnerByID(ctx, id); err != nil {
			if notFound(err) {
				return i18n.ErrorOwnerNotFound.WithParam("ID", id)
			}
			return err
		}
	}
	for _, id := range req.Tenants {
		if _, err := e.db.GetTenantByID(ctx, id); err != nil {
			if notFound(err) {
				return i18n.ErrorTenantNotFound.WithParam("ID", id)
			}
			return err
		}
	}
	if req.Agent != "" {
		if _, err := e.db.GetAgentByID(ctx, req.Agent); err != nil {
			if notFound(err) {
				return i18n.ErrorAgentNotFound
			}
			return err
		}
	}
	return nil
}

func applyContractFields(c *database.Contract, req *dto.ContractRequest) {
	c.InventoryID = req.Inventory
	c.AgentID = req.Agent
	c.SigningDate = req.SigningDate
	c.StartDate = req.StartDate
	c.EndDate = req.EndDate
	c.RenewalDate = req.RenewalDate
	c.MonthlyRentalAmount = req.MonthlyRentalAmount
	c.MonthlyTaxAmount = req.MonthlyTaxAmount
	c.BuildingManagementCharges = req.BuildingManagementCharges
	c.SecurityDepositAmount = req.SecurityDepositAmount
	c.AnnualRentalIncrease = req.AnnualRentalIncrease
	c.WapdaSubmeterReading = req.WapdaSubmeterReading
	c.GeneratorSubmeterReading = req.GeneratorSubmeterReading
	c.WaterSubmeterReading = req.WaterSubmeterReading
	c.MonthlyRentalDueDate = req.MonthlyRentalDueDate
	c.MonthlyRentalOverDate = req.MonthlyRentalOverDate
	c.TerminationNoticePeriod = req.TerminationNoticePeriod
	c.NonrefundableSecurityDeposit = req.NonrefundableSecurityDeposit
	c.Remarks = req.Remarks
	c.Images = req.Images
}

// writeSignatories inserts the signatory and tenancy rows for a contract.
func (e *Engine) writeSignatories(ctx context.Context, contract *database.Contract, req *dto.ContractRequest) error {
	ownerRows := make([]*database.OwnerSignContract, 0, len(req.Owners))
	for _, id := range req.Owners {
		ownerRows = append(ownerRows, &database.OwnerSignContract{ContractID: contract.ID, OwnerID: id})
	}
	if err := e.db.CreateOwnerSignatures(ctx, ownerRows); err != nil {
		return err
	}

	tenantRows := make([]*database.TenantSignContract, 0, len(req.Tenants))
	rentalRows := make([]*database.RentalInventory, 0, len(req.Tenants))
	for _, id := range req.Tenants {
		tenantRows = append(tenantRows, &database.TenantSignContract{ContractID: contract.ID, TenantID: id})
		rentalRows = append(rentalRows, &database.RentalInventory{InventoryID: req.Inventory, TenantID: id, IsActive: true})
	}
	if err := e.db.CreateTenantSignatures(ctx, tenantRows); err != nil {
		return err
	}
	return e.db.CreateRentalRecords(ctx, rentalRows)
}

// AddContract persists a contract, its signatory rows and the tenancy
// ledger rows, then transitions the unit to rented. The whole write set is
// one transaction.
func (e *Engine) AddContract(ctx context.Context, req *dto.ContractRequest, actorID string) (*database.Contract, error) {
	if err := validateContractIDs(req); err != nil {
		return nil, err
	}

	contract := &database.Contract{CreatedBy: actorID}
	applyContractFields(contract, req)

	err := e.db.Transaction(ctx, func(ctx context.Context) error {
		inv, err := e.db.GetInventoryByID(ctx, req.Inventory)
		if err != nil {
			if notFound(err) {
				return i18n.ErrorInventoryNotFound
			}
			return err
		}
		if err := e.resolveParties(ctx, req); err != nil {
			return err
		}

		if err := e.db.CreateContract(ctx, contract); err != nil {
			return err
		}
		if err := e.writeSignatories(ctx, contract, req); err != nil {
			return err
		}

		inv.Status = cnst.StatusRented
		return e.db.UpdateInventory(ctx, inv)
	})
	e.countTransition("add_contract", err)
	if err != nil {
		if i18n.IsI18nError(err) {
			return nil, err
		}
		e.logger.Error("add contract failed", zap.Error(err))
		return nil, i18n.ErrInternalServer
	}

	e.logger.Info("contract added",
		zap.String("id", contract.ID),
		zap.String("inventoryId", contract.InventoryID),
		zap.Int("owners", len(req.Owners)),
		zap.Int("tenants", len(req.Tenants)))
	return contract, nil
}

// UpdateContract mutates the contract fields and replaces its signatory and
// tenancy rows with the new party lists. Delete and reinsert happen in one
// transaction so no reader observes a contract without signatories.
func (e *Engine) UpdateContract(ctx context.Context, contractID string, req *dto.ContractRequest) (*database.Contract, error) {
	if !validID(contractID) {
		return nil, i18n.ErrorInvalidContractID
	}
	if err := validateContractIDs(req); err != nil {
		return nil, err
	}

	var contract *database.Contract
	err := e.db.Transaction(ctx, func(ctx context.Context) error {
		var err error
		contract, err = e.db.GetContractByID(ctx, contractID)
		if err != nil {
			if notFound(err) {
				return i18n.ErrorContractNotFound
			}
			return err
		}
		if _, err := e.db.GetInventoryByID(ctx, req.Inventory); err != nil {
			if notFound(err) {
				return i18n.ErrorInventoryNotFound
			}
			return err
		}
		if err := e.resolveParties(ctx, req); err != nil {
			return err
		}

		previousInventoryID := contract.InventoryID
		applyContractFields(contract, req)
		if err := e.db.UpdateContract(ctx, contract); err != nil {
			return err
		}

		if err := e.db.DeleteOwnerSignaturesByContract(ctx, contractID); err != nil {
			return err
		}
		if err := e.db.DeleteTenantSignaturesByContract(ctx, contractID); err != nil {
			return err
		}
		if err := e.db.DeleteRentalRecordsByInventory(ctx, req.Inventory); err != nil {
			return err
		}
		if previousInventoryID != req.Inventory {
			if err := e.db.DeleteRentalRecordsByInventory(ctx, previousInventoryID); err != nil {
				return err
			}
		}

		return e.writeSignatories(ctx, contract, req)
	})
	e.countTransition("update_contract", err)
	if err != nil {
		if i18n.IsI18nError(err) {
			return nil, err
		}
		e.logger.Error("update contract failed", zap.String("id", contractID), zap.Error(err))
		return nil, i18n.ErrInternalServer
	}

	e.logger.Info("contract updated", zap.String("id", contractID))
	return contract, nil
}
