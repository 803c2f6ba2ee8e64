package reporting

import (
	"context"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
)

// ContractBucket is one dashboard facet: a page of contracts plus the
// filtered and overall counts.
type ContractBucket struct {
	Contracts   []*database.Contract `json:"contracts"`
	SearchCount int64                `json:"searchCount"`
	Count       int64                `json:"count"`
}

// Dashboard groups the three contract facets the dashboard shows.
type Dashboard struct {
	ExpiringContractsData *ContractBucket `json:"expiringContractsData"`
	ExpiredContractsData  *ContractBucket `json:"expiredContractsData"`
	UploadedContractsData *ContractBucket `json:"uploadedContractsData"`
}

// ContractDashboard computes the expiring, expired and uploaded facets in
// one call. Expiring means the end date falls inside (now, now+30d].
func (e *Engine) ContractDashboard(ctx context.Context, q *dto.PageQuery) (*Dashboard, error) {
	defer e.timeView("contract_dashboard")()
	args := pageArgs(q)
	now := e.now()

	expiring, err := e.db.ListExpiringContracts(ctx, now, now.Add(expiringWindow), args)
	if err != nil {
		return nil, e.internal("contract dashboard", err)
	}
	expiringCount, err := e.db.CountExpiringContracts(ctx, now, now.Add(expiringWindow), args.Search)
	if err != nil {
		return nil, e.internal("contract dashboard", err)
	}
	expiringAll, err := e.db.CountExpiringContracts(ctx, now, now.Add(expiringWindow), "")
	if err != nil {
		return nil, e.internal("contract dashboard", err)
	}

	expired, err := e.db.ListExpiredContracts(ctx, now, args)
	if err != nil {
		return nil, e.internal("contract dashboard", err)
	}
	expiredCount, err := e.db.CountExpiredContracts(ctx, now, args.Search)
	if err != nil {
		return nil, e.internal("contract dashboard", err)
	}
	expiredAll, err := e.db.CountExpiredContracts(ctx, now, "")
	if err != nil {
		return nil, e.internal("contract dashboard", err)
	}

	uploaded, err := e.db.ListUploadedContracts(ctx, args)
	if err != nil {
		return nil, e.internal("contract dashboard", err)
	}
	uploadedCount, err := e.db.CountUploadedContracts(ctx, args.Search)
	if err != nil {
		return nil, e.internal("contract dashboard", err)
	}
	uploadedAll, err := e.db.CountUploadedContracts(ctx, "")
	if err != nil {
		return nil, e.internal("contract dashboard", err)
	}

	return &Dashboard{
		ExpiringContractsData: &ContractBucket{Contracts: expiring, SearchCount: expiringCount, Count: expiringAll},
		ExpiredContractsData:  &ContractBucket{Contracts: expired, SearchCount: expiredCount, Count: expiredAll},
		UploadedContractsData: &ContractBucket{Contracts: uploaded, SearchCount: uploadedCount, Count: uploadedAll},
	}, nil
}

// ContractDetail is a contract joined with its signatories and covered
// unit.
type ContractDetail struct {
	Contract  *database.Contract  `json:"contract"`
	Inventory *database.Inventory `json:"inventory,omitempty"`
	Agent     *database.Agent     `json:"agent,omitempty"`
	Owners    []*database.Owner   `json:"owners"`
	Tenants   []*database.Tenant  `json:"tenants"`
}

// ShowContract returns one contract with its parties resolved.
func (e *Engine) ShowContract(ctx context.Context, id string) (*ContractDetail, error) {
	defer e.timeView("show_contract")()

	contract, err := e.db.GetContractByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, i18n.ErrorContractNotFound
		}
		return nil, e.internal("show contract", err)
	}
	return e.contractDetail(ctx, contract)
}

func (e *Engine) contractDetail(ctx context.Context, contract *database.Contract) (*ContractDetail, error) {
	detail := &ContractDetail{Contract: contract}

	inv, err := e.db.GetInventoryByID(ctx, contract.InventoryID)
	if err == nil {
		detail.Inventory = inv
	} else if !notFound(err) {
		return nil, e.internal("show contract", err)
	}

	if contract.AgentID != "" {
		agent, err := e.db.GetAgentByID(ctx, contract.AgentID)
		if err == nil {
			detail.Agent = agent
		} else if !notFound(err) {
			return nil, e.internal("show contract", err)
		}
	}

	if detail.Owners, err = e.db.ListContractOwners(ctx, contract.ID); err != nil {
		return nil, e.internal("show contract", err)
	}
	if detail.Tenants, err = e.db.ListContractTenants(ctx, contract.ID); err != nil {
		return nil, e.internal("show contract", err)
	}
	return detail, nil
}

// ContractListView is a page of resolved contracts with the overall count.
type ContractListView struct {
	Contracts []*ContractDetail `json:"contracts"`
	Count     int64             `json:"count"`
}

// ShowContracts lists contracts newest first with their parties resolved.
func (e *Engine) ShowContracts(ctx context.Context, q *dto.PageQuery) (*ContractListView, error) {
	defer e.timeView("show_contracts")()
	args := pageArgs(q)

	contracts, err := e.db.ListContracts(ctx, args)
	if err != nil {
		return nil, e.internal("show contracts", err)
	}
	count, err := e.db.CountContracts(ctx)
	if err != nil {
		return nil, e.internal("show contracts", err)
	}

	details := make([]*ContractDetail, 0, len(contracts))
	for _, c := range contracts {
		detail, err := e.contractDetail(ctx, c)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return &ContractListView{Contracts: details, Count: count}, nil
}
