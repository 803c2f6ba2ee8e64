package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/common/cnst"
	"github.com/estateops/estate-api/internal/common/config"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T) (*Engine, database.Database) {
	t.Helper()
	db, err := database.NewDatabase(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewEngine(db, zap.NewNop()), db
}

func seedInventory(t *testing.T, db database.Database, typ, flatNo string, status cnst.InventoryStatus) *database.Inventory {
	t.Helper()
	inv := &database.Inventory{InventoryType: typ, Floor: "1", FlatNo: flatNo, Status: status}
	require.NoError(t, db.CreateInventory(context.Background(), inv))
	return inv
}

func seedContract(t *testing.T, db database.Database, invID string, end time.Time, images database.StringArray) *database.Contract {
	t.Helper()
	c := &database.Contract{
		InventoryID:                  invID,
		SigningDate:                  end.Add(-365 * 24 * time.Hour),
		StartDate:                    end.Add(-365 * 24 * time.Hour),
		EndDate:                      end,
		RenewalDate:                  end,
		MonthlyRentalAmount:          "1",
		MonthlyTaxAmount:             "1",
		BuildingManagementCharges:    "1",
		SecurityDepositAmount:        "1",
		AnnualRentalIncrease:         "1",
		MonthlyRentalDueDate:         1,
		MonthlyRentalOverDate:        1,
		TerminationNoticePeriod:      1,
		NonrefundableSecurityDeposit: "yes",
		Images:                       images,
	}
	require.NoError(t, db.CreateContract(context.Background(), c))
	return c
}

func TestVacantInventories_BreakdownAndCounts(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()

	seedInventory(t, db, cnst.InventoryTypeFlat, "101", cnst.StatusForSale)
	seedInventory(t, db, cnst.InventoryTypeFlat, "102", cnst.StatusForSale)
	seedInventory(t, db, cnst.InventoryTypeShop, "S-1", cnst.StatusForSale)
	seedInventory(t, db, cnst.InventoryTypeFlat, "201", cnst.StatusSold)

	view, err := e.VacantInventories(ctx, &dto.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, view.Inventories, 3)
	assert.Equal(t, int64(3), view.Count)
	assert.Equal(t, int64(3), view.SearchCount)

	byType := map[string]int64{}
	for _, tc := range view.Breakdown {
		byType[tc.InventoryType] = tc.Count
	}
	assert.Equal(t, int64(2), byType[cnst.InventoryTypeFlat])
	assert.Equal(t, int64(1), byType[cnst.InventoryTypeShop])

	// search narrows searchCount but not the overall count
	view, err = e.VacantInventories(ctx, &dto.PageQuery{Limit: 10, Search: "s-1"})
	require.NoError(t, err)
	assert.Len(t, view.Inventories, 1)
	assert.Equal(t, int64(1), view.SearchCount)
	assert.Equal(t, int64(3), view.Count)
}

func TestOpenForSale_DefaultPaging(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		seedInventory(t, db, cnst.InventoryTypeFlat, string(rune('A'+i)), cnst.StatusForSale)
	}

	// default limit is 5, pages are 1-indexed
	view, err := e.OpenForSale(ctx, &dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, view.Inventories, 5)
	assert.Equal(t, int64(7), view.Count)

	view, err = e.OpenForSale(ctx, &dto.PageQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, view.Inventories, 2)
}

func TestContractDashboard_Windows(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	now := time.Now()
	e.now = func() time.Time { return now }

	inv := seedInventory(t, db, cnst.InventoryTypeFlat, "101", cnst.StatusRented)
	expiring := seedContract(t, db, inv.ID, now.Add(10*24*time.Hour), nil)
	expired := seedContract(t, db, inv.ID, now.Add(-24*time.Hour), nil)
	farOut := seedContract(t, db, inv.ID, now.Add(40*24*time.Hour), database.StringArray{"https://cdn.example.com/a.jpg"})

	dash, err := e.ContractDashboard(ctx, &dto.PageQuery{Limit: 10})
	require.NoError(t, err)

	if assert.Len(t, dash.ExpiringContractsData.Contracts, 1) {
		assert.Equal(t, expiring.ID, dash.ExpiringContractsData.Contracts[0].ID)
	}
	assert.Equal(t, int64(1), dash.ExpiringContractsData.SearchCount)
	assert.Equal(t, int64(1), dash.ExpiringContractsData.Count)

	if assert.Len(t, dash.ExpiredContractsData.Contracts, 1) {
		assert.Equal(t, expired.ID, dash.ExpiredContractsData.Contracts[0].ID)
	}

	if assert.Len(t, dash.UploadedContractsData.Contracts, 1) {
		assert.Equal(t, farOut.ID, dash.UploadedContractsData.Contracts[0].ID)
	}
}

func TestContractDashboard_SearchFiltersFacets(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	now := time.Now()
	e.now = func() time.Time { return now }

	inv := seedInventory(t, db, cnst.InventoryTypeFlat, "101", cnst.StatusRented)
	seedContract(t, db, inv.ID, now.Add(10*24*time.Hour), nil)
	seedContract(t, db, inv.ID, now.Add(-24*time.Hour), nil)

	// search matches the covered unit's type case-insensitively
	dash, err := e.ContractDashboard(ctx, &dto.PageQuery{Limit: 10, Search: "fLaT"})
	require.NoError(t, err)
	assert.Len(t, dash.ExpiringContractsData.Contracts, 1)
	assert.Equal(t, int64(1), dash.ExpiringContractsData.SearchCount)
	assert.Equal(t, int64(1), dash.ExpiringContractsData.Count)

	// a miss empties every facet page but leaves the unfiltered counts
	dash, err = e.ContractDashboard(ctx, &dto.PageQuery{Limit: 10, Search: "penthouse"})
	require.NoError(t, err)
	assert.Empty(t, dash.ExpiringContractsData.Contracts)
	assert.Equal(t, int64(0), dash.ExpiringContractsData.SearchCount)
	assert.Equal(t, int64(1), dash.ExpiringContractsData.Count)
	assert.Empty(t, dash.ExpiredContractsData.Contracts)
	assert.Equal(t, int64(0), dash.ExpiredContractsData.SearchCount)
	assert.Equal(t, int64(1), dash.ExpiredContractsData.Count)
}

func TestExpiredCnicOwners_SortedAscending(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	now := time.Now()
	e.now = func() time.Time { return now }

	mkOwner := func(name, cnic string, expiry time.Time) {
		require.NoError(t, db.CreateOwner(ctx, &database.Owner{
			Name: name, Father: "F", Cnic: cnic, CnicExpiry: expiry,
			CurrentAddress: "a", PermanentAddress: "b",
		}))
	}
	mkOwner("Late", "11111-1111111-1", now.Add(-72*time.Hour))
	mkOwner("Later", "22222-2222222-2", now.Add(-24*time.Hour))
	mkOwner("Valid", "33333-3333333-3", now.Add(24*time.Hour))

	view, err := e.ExpiredCnicOwners(ctx, &dto.PageQuery{Limit: 10})
	require.NoError(t, err)
	if assert.Len(t, view.Owners, 2) {
		assert.Equal(t, "Late", view.Owners[0].Name)
		assert.Equal(t, "Later", view.Owners[1].Name)
	}
	assert.Equal(t, int64(2), view.Count)
}

func TestShowContract_ResolvesParties(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	now := time.Now()

	inv := seedInventory(t, db, cnst.InventoryTypeFlat, "101", cnst.StatusRented)
	owner := &database.Owner{Name: "Akram", Father: "F", Cnic: "11111-1111111-1", CnicExpiry: now, CurrentAddress: "a", PermanentAddress: "b"}
	require.NoError(t, db.CreateOwner(ctx, owner))
	tenant := &database.Tenant{Name: "Danish", Father: "F", Cnic: "44444-4444444-4", CnicExpiry: now, CurrentAddress: "a", PermanentAddress: "b"}
	require.NoError(t, db.CreateTenant(ctx, tenant))
	agent := &database.Agent{Name: "Broker"}
	require.NoError(t, db.CreateAgent(ctx, agent))

	c := seedContract(t, db, inv.ID, now.Add(24*time.Hour), nil)
	c.AgentID = agent.ID
	require.NoError(t, db.UpdateContract(ctx, c))
	require.NoError(t, db.CreateOwnerSignatures(ctx, []*database.OwnerSignContract{{ContractID: c.ID, OwnerID: owner.ID}}))
	require.NoError(t, db.CreateTenantSignatures(ctx, []*database.TenantSignContract{{ContractID: c.ID, TenantID: tenant.ID}}))

	detail, err := e.ShowContract(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, detail.Inventory.ID)
	assert.Equal(t, "Broker", detail.Agent.Name)
	assert.Len(t, detail.Owners, 1)
	assert.Len(t, detail.Tenants, 1)

	_, err = e.ShowContract(ctx, "missing")
	assert.ErrorIs(t, err, i18n.ErrorContractNotFound)
}

func TestShowOwnerAndInventoryViews(t *testing.T) {
	e, db := newTestEngine(t)
	ctx := context.Background()
	now := time.Now()

	owner := &database.Owner{Name: "Akram", Father: "F", Cnic: "11111-1111111-1", CnicExpiry: now, CurrentAddress: "a", PermanentAddress: "b"}
	require.NoError(t, db.CreateOwner(ctx, owner))
	inv := seedInventory(t, db, cnst.InventoryTypeFlat, "101", cnst.StatusSold)
	require.NoError(t, db.CreateSellRecord(ctx, &database.SellInventory{
		InventoryID: inv.ID, OwnerID: owner.ID, IsActive: true,
	}))

	ownerDetail, err := e.ShowOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, ownerDetail.Inventories, 1)

	invView, err := e.ShowInventories(ctx, &dto.PageQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, invView.Inventories, 1)
	if assert.Len(t, invView.Inventories[0].Owners, 1) {
		assert.Equal(t, "Akram", invView.Inventories[0].Owners[0].Name)
	}

	sold, err := e.SoldInventories(ctx, &dto.PageQuery{Limit: 10})
	require.NoError(t, err)
	if assert.Len(t, sold.Inventories, 1) {
		assert.Equal(t, "Akram", sold.Inventories[0].OwnerName)
	}
}
