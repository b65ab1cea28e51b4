package main

import (
	"encoding/json"
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"message": "Welcome to OLX Clone API"})
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()

	mux.Get("/", http.HandlerFunc(app.home))

	// Users
	mux.Post("/users/sign_in", http.HandlerFunc(app.userHandler.SignIn))
	mux.Post("/users", http.HandlerFunc(app.userHandler.CreateUser))
	mux.Get("/users/me", http.HandlerFunc(app.userHandler.GetCurrentUser))
	mux.Get("/users", http.HandlerFunc(app.userHandler.GetUsers))
	mux.Get("/users/:id/favorites", http.HandlerFunc(app.favoriteHandler.GetFavoritesByUser))
	mux.Get("/users/:id/messages", http.HandlerFunc(app.messageHandler.GetMessagesByUser))
	mux.Get("/users/:id/transactions/buyer", http.HandlerFunc(app.transactionHandler.GetTransactionsByBuyer))
	mux.Get("/users/:id/transactions/seller", http.HandlerFunc(app.transactionHandler.GetTransactionsBySeller))
	mux.Get("/users/:id", http.HandlerFunc(app.userHandler.GetUserByID))
	mux.Put("/users/:id", http.HandlerFunc(app.userHandler.UpdateUser))
	mux.Del("/users/:id", http.HandlerFunc(app.userHandler.DeleteUser))

	// Locations
	mux.Post("/locations", http.HandlerFunc(app.locationHandler.CreateLocation))
	mux.Get("/locations", http.HandlerFunc(app.locationHandler.GetLocations))
	mux.Get("/locations/:id", http.HandlerFunc(app.locationHandler.GetLocationByID))
	mux.Put("/locations/:id", http.HandlerFunc(app.locationHandler.UpdateLocation))
	mux.Del("/locations/:id", http.HandlerFunc(app.locationHandler.DeleteLocation))

	// Categories
	mux.Post("/categories", http.HandlerFunc(app.categoryHandler.CreateCategory))
	mux.Get("/categories/parent", http.HandlerFunc(app.categoryHandler.GetParentCategories))
	mux.Get("/categories", http.HandlerFunc(app.categoryHandler.GetCategories))
	mux.Get("/categories/:id/subcategories", http.HandlerFunc(app.categoryHandler.GetSubcategories))
	mux.Get("/categories/:id", http.HandlerFunc(app.categoryHandler.GetCategoryByID))
	mux.Put("/categories/:id", http.HandlerFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/categories/:id", http.HandlerFunc(app.categoryHandler.DeleteCategory))

	// Ads
	mux.Post("/ads", http.HandlerFunc(app.adHandler.CreateAd))
	mux.Get("/ads/search", http.HandlerFunc(app.adHandler.SearchAds))
	mux.Get("/ads/user/:id", http.HandlerFunc(app.adHandler.GetAdsByUser))
	mux.Get("/ads/category/:id", http.HandlerFunc(app.adHandler.GetAdsByCategory))
	mux.Get("/ads/location/:id", http.HandlerFunc(app.adHandler.GetAdsByLocation))
	mux.Get("/ads", http.HandlerFunc(app.adHandler.GetAds))
	mux.Get("/ads/:id/images", http.HandlerFunc(app.adImageHandler.GetImagesByAd))
	mux.Get("/ads/:id/messages", http.HandlerFunc(app.messageHandler.GetMessagesForAd))
	mux.Get("/ads/:id/reports", http.HandlerFunc(app.reportHandler.GetReportsForAd))
	mux.Get("/ads/:id", http.HandlerFunc(app.adHandler.GetAdByID))
	mux.Put("/ads/:id", http.HandlerFunc(app.adHandler.UpdateAd))
	mux.Del("/ads/:id", http.HandlerFunc(app.adHandler.DeleteAd))

	// Ad images
	mux.Post("/ad-images/upload", http.HandlerFunc(app.adImageHandler.UploadAdImage))
	mux.Post("/ad-images", http.HandlerFunc(app.adImageHandler.CreateAdImage))
	mux.Del("/ad-images/:id", http.HandlerFunc(app.adImageHandler.DeleteAdImage))

	// Favorites
	mux.Post("/favorites", http.HandlerFunc(app.favoriteHandler.AddFavorite))
	mux.Get("/favorites/:user_id/:ad_id", http.HandlerFunc(app.favoriteHandler.IsFavorite))
	mux.Del("/favorites/:user_id/:ad_id", http.HandlerFunc(app.favoriteHandler.RemoveFavorite))

	// Messages
	mux.Post("/messages", http.HandlerFunc(app.messageHandler.CreateMessage))
	mux.Put("/messages/:id", http.HandlerFunc(app.messageHandler.UpdateMessage))
	mux.Del("/messages/:id", http.HandlerFunc(app.messageHandler.DeleteMessage))
	mux.Get("/conversations/:user1_id/:user2_id/:ad_id", http.HandlerFunc(app.messageHandler.GetConversation))

	// Reports
	mux.Post("/reports", http.HandlerFunc(app.reportHandler.CreateReport))
	mux.Get("/reports", http.HandlerFunc(app.reportHandler.GetReports))
	mux.Del("/reports/:id", http.HandlerFunc(app.reportHandler.DeleteReport))

	// Transactions
	mux.Post("/transactions", http.HandlerFunc(app.transactionHandler.CreateTransaction))
	mux.Get("/transactions", http.HandlerFunc(app.transactionHandler.GetTransactions))
	mux.Get("/transactions/:id", http.HandlerFunc(app.transactionHandler.GetTransactionByID))
	mux.Put("/transactions/:id", http.HandlerFunc(app.transactionHandler.UpdateTransaction))
	mux.Del("/transactions/:id", http.HandlerFunc(app.transactionHandler.DeleteTransaction))

	// Chat
	mux.Get("/ws", http.HandlerFunc(app.WebSocketHandler))

	return standardMiddleware.Then(mux)
}
