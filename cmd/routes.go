package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	optionalAuth := standardMiddleware.Append(app.optionalAuth)
	authMiddleware := standardMiddleware.Append(app.requireRole())
	sellerMiddleware := standardMiddleware.Append(app.requireRole(models.RoleSeller, models.RoleAgent))
	adminMiddleware := standardMiddleware.Append(app.requireRole(models.RoleAdmin))

	mux := pat.New()

	// Properties. /properties/trending is registered before /properties/:id
	// so the literal path wins.
	mux.Get("/properties/trending", optionalAuth.ThenFunc(app.propertyHandler.GetTrending))
	mux.Get("/properties/:id", optionalAuth.ThenFunc(app.propertyHandler.GetPropertyByID))
	mux.Get("/properties", optionalAuth.ThenFunc(app.propertyHandler.GetProperties))
	mux.Post("/properties", sellerMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Put("/properties/:id", sellerMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Del("/properties/:id", sellerMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))
	mux.Get("/my/properties", sellerMiddleware.ThenFunc(app.propertyHandler.GetMyProperties))

	// Favorites
	mux.Post("/favorites/toggle", authMiddleware.ThenFunc(app.favoriteHandler.ToggleFavorite))
	mux.Get("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.GetFavorites))

	// Inquiries
	mux.Post("/inquiries", optionalAuth.ThenFunc(app.inquiryHandler.CreateInquiry))
	mux.Get("/my/inquiries", sellerMiddleware.ThenFunc(app.inquiryHandler.GetMyInquiries))
	mux.Put("/inquiries/:id/status", sellerMiddleware.ThenFunc(app.inquiryHandler.UpdateInquiryStatus))

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.Me))

	// Subscriptions
	mux.Get("/subscription", authMiddleware.ThenFunc(app.subscriptionHandler.GetSubscription))
	mux.Post("/subscription/upgrade", authMiddleware.ThenFunc(app.subscriptionHandler.UpgradeSubscription))

	// Admin moderation
	mux.Get("/admin/properties", adminMiddleware.ThenFunc(app.adminHandler.GetProperties))
	mux.Put("/admin/properties/:id/status", adminMiddleware.ThenFunc(app.adminHandler.SetPropertyStatus))

	return standardMiddleware.Then(mux)
}
