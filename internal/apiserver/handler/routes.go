package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every API route. authMW protects everything
// except register, login and refresh.
func (h *Handler) RegisterRoutes(r gin.IRouter, authMW gin.HandlerFunc) {
	api := r.Group("/api")

	user := api.Group("/user")
	{
		user.POST("/register", h.Register)
		user.POST("/login", h.Login)
		user.POST("/refresh-token", h.RefreshToken)
		user.POST("/change-password", authMW, h.ChangePassword)
		user.GET("/me", authMW, h.GetUserInfo)
	}

	owner := api.Group("/owner", authMW)
	{
		owner.POST("/add", h.AddOwner)
		owner.PUT("/update/:id", h.UpdateOwner)
		owner.PUT("/update-cnic/:id", h.UpdateOwnerCnic)
		owner.GET("/expired-cnic", h.ExpiredCnicOwners)
		owner.GET("/all", h.ShowOwners)
		owner.GET("/:id", h.ShowOwner)
	}

	tenant := api.Group("/tenant", authMW)
	{
		tenant.POST("/add", h.AddTenant)
		tenant.PUT("/update/:id", h.UpdateTenant)
		tenant.PUT("/update-cnic/:id", h.UpdateTenantCnic)
		tenant.GET("/expired-cnic", h.ExpiredCnicTenants)
		tenant.GET("/all", h.ShowTenants)
		tenant.GET("/:id", h.ShowTenant)
	}

	agent := api.Group("/agent", authMW)
	{
		agent.POST("/add", h.AddAgent)
		agent.GET("/all", h.ListAgents)
	}

	inventory := api.Group("/inventory", authMW)
	{
		inventory.POST("/add", h.AddInventory)
		inventory.PUT("/update/:id", h.UpdateInventory)
		inventory.PUT("/update-status/:id", h.UpdateInventoryStatus)
		inventory.POST("/sell", h.SellInventory)
		inventory.GET("/vacant-inventories", h.VacantInventories)
		inventory.GET("/open-for-sell", h.OpenForSale)
		inventory.GET("/sold-inventories/all", h.SoldInventories)
		inventory.GET("/all", h.ShowInventories)
		inventory.GET("/:id", h.ShowInventory)
	}

	contract := api.Group("/contract", authMW)
	{
		contract.POST("/add", h.AddContract)
		contract.PUT("/update/:id", h.UpdateContract)
		contract.GET("/contract-dashboard-counts", h.ContractDashboard)
		contract.GET("/all", h.ShowContracts)
		contract.GET("/:id", h.ShowContract)
	}
}
