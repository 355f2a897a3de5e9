package handlers

import "github.com/gin-gonic/gin"

// Register mounts every endpoint under /api.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.RegisterOrganization)
		auth.POST("/logout", h.Logout)
	}

	api.GET("/session", h.Session)
	api.PUT("/session/organization", h.SelectOrganization)
	api.PUT("/session/location", h.SelectLocation)
	api.GET("/organizations", list(h.svc.Organizations))

	locations := api.Group("/locations")
	{
		locations.GET("", list(h.svc.Locations))
		locations.POST("", create(h.svc.AddLocation))
		locations.PUT("/:id", update(h.svc.UpdateLocation))
		locations.DELETE("/:id", remove(h.svc.DeleteLocation))
	}

	products := api.Group("/products")
	{
		products.GET("", h.Products)
		products.POST("", create(h.svc.AddProduct))
		products.PUT("/:id", update(h.svc.UpdateProduct))
		products.DELETE("/:id", remove(h.svc.DeleteProduct))
	}

	templates := api.Group("/templates")
	{
		templates.GET("", list(h.svc.TemplateProducts))
		templates.POST("", create(h.svc.AddTemplateProduct))
		templates.PUT("/:id", update(h.svc.UpdateTemplateProduct))
		templates.DELETE("/:id", remove(h.svc.DeleteTemplateProduct))
		templates.POST("/:id/import", byId(h.svc.ImportTemplate))
	}
	api.GET("/template-groups", list(h.svc.TemplateGroups))
	api.POST("/template-groups/:group/import", h.ImportTemplateGroup)
	api.POST("/template-uploads", h.UploadTemplates)

	customers := api.Group("/customers")
	{
		customers.GET("", list(h.svc.Customers))
		customers.POST("", create(h.svc.AddCustomer))
		customers.PUT("/:id", update(h.svc.UpdateCustomer))
		customers.DELETE("/:id", remove(h.svc.DeleteCustomer))
	}

	transactions := api.Group("/transactions")
	{
		transactions.GET("", list(h.svc.Transactions))
		transactions.POST("", create(h.svc.AddTransaction))
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("", list(h.svc.Inventory))
		inventory.POST("", create(h.svc.AddIngredient))
		inventory.PUT("/:id", update(h.svc.UpdateIngredient))
		inventory.DELETE("/:id", remove(h.svc.DeleteIngredient))
		inventory.PUT("/:id/stock", h.SetStock)
		inventory.POST("/:id/restock", h.Restock)
		inventory.POST("/:id/waste", h.RecordWaste)
	}

	tables := api.Group("/tables")
	{
		tables.GET("", list(h.svc.Tables))
		tables.POST("", create(h.svc.AddTable))
		tables.PUT("/:id", update(h.svc.UpdateTable))
		tables.DELETE("/:id", remove(h.svc.DeleteTable))
		tables.PUT("/:id/status", h.SetTableStatus)
		tables.POST("/:id/advance", byId(h.svc.AdvanceTableStatus))
	}

	employees := api.Group("/employees")
	{
		employees.GET("", list(h.svc.Employees))
		employees.POST("", create(h.svc.AddEmployee))
		employees.PUT("/:id", update(h.svc.UpdateEmployee))
		employees.DELETE("/:id", remove(h.svc.DeleteEmployee))
		employees.POST("/:id/clock-in", byId(h.svc.ClockIn))
		employees.POST("/:id/clock-out", byId(h.svc.ClockOut))
	}

	shifts := api.Group("/shifts")
	{
		shifts.GET("", list(h.svc.Shifts))
		shifts.POST("", create(h.svc.AddShift))
		shifts.PUT("/:id", update(h.svc.UpdateShift))
		shifts.DELETE("/:id", remove(h.svc.DeleteShift))
	}

	api.GET("/settings", h.Settings)
	api.PUT("/settings", h.UpdateSettings)

	cart := api.Group("/cart")
	{
		cart.GET("", h.Cart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddToCart)
		cart.PATCH("/items/:productId", h.UpdateCartQuantity)
		cart.DELETE("/items/:productId", h.RemoveFromCart)
	}
	api.POST("/checkout", h.Checkout)

	reports := api.Group("/reports")
	{
		reports.GET("/summary", h.FinancialSummary)
		reports.GET("/expenses", list(h.svc.ExpenseByCategory))
		reports.GET("/low-stock", list(h.svc.LowStock))
		reports.GET("/payroll", list(h.svc.Payroll))
		reports.GET("/locations", list(h.svc.LocationOverview))
		reports.GET("/ledger.xlsx", h.ExportLedger)
	}
}
