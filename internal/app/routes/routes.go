package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smart-beneficiary/sbms/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	citizenController *controllers.CitizenController,
	categoryController *controllers.CategoryController,
	eligibilityController *controllers.EligibilityController,
	schemeController *controllers.SchemeController,
	ruleController *controllers.RuleController,
	applicationController *controllers.ApplicationController,
	grievanceController *controllers.GrievanceController,
	announcementController *controllers.AnnouncementController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Citizen profile routes, with nested citizen-scoped resources
	citizens := v1.Group("/citizens")
	{
		citizens.POST("", citizenController.RegisterCitizen)
		citizens.GET("/:id", citizenController.GetCitizenByID)
		citizens.PUT("/:id", citizenController.UpdateCitizen)
		citizens.DELETE("/:id", citizenController.DeleteCitizen)

		// Category interests
		citizens.POST("/:id/interests", categoryController.AddInterests)
		citizens.GET("/:id/interests", categoryController.ListInterests)
		citizens.DELETE("/:id/interests/:categoryId", categoryController.RemoveInterest)

		// Eligibility reads and manual recompute
		citizens.GET("/:id/eligible-schemes", eligibilityController.ListEligibleSchemes)
		citizens.GET("/:id/eligibility", eligibilityController.ListEligibility)
		citizens.POST("/:id/evaluate", eligibilityController.EvaluateCitizen)

		// Applications and grievances
		citizens.POST("/:id/applications", applicationController.CreateApplication)
		citizens.GET("/:id/applications", applicationController.ListApplications)
		citizens.PUT("/:id/applications/:applicationId/withdraw", applicationController.WithdrawApplication)
		citizens.POST("/:id/grievances", grievanceController.CreateGrievance)
		citizens.GET("/:id/grievances", grievanceController.ListGrievances)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", categoryController.GetAllCategories)
		categories.POST("", categoryController.CreateCategory)
	}

	schemes := v1.Group("/schemes")
	{
		schemes.GET("", schemeController.GetAllSchemes)
		schemes.POST("", schemeController.CreateScheme)
		schemes.GET("/:id", schemeController.GetSchemeByID)
		schemes.PUT("/:id", schemeController.UpdateScheme)
		schemes.DELETE("/:id", schemeController.DeleteScheme)
		schemes.GET("/:id/rules", ruleController.GetSchemeRules)
	}

	rules := v1.Group("/rules")
	{
		rules.POST("", ruleController.CreateRule)
		rules.GET("/:id", ruleController.GetRuleByID)
		rules.PUT("/:id", ruleController.UpdateRule)
		rules.DELETE("/:id", ruleController.DeleteRule)
	}

	applications := v1.Group("/applications")
	{
		applications.PUT("/:id/status", applicationController.DecideApplication)
	}

	grievances := v1.Group("/grievances")
	{
		grievances.PUT("/:id/resolve", grievanceController.ResolveGrievance)
	}

	announcements := v1.Group("/announcements")
	{
		announcements.GET("", announcementController.GetActiveAnnouncements)
		announcements.POST("", announcementController.CreateAnnouncement)
		announcements.PUT("/:id/active", announcementController.SetAnnouncementActive)
	}
}
