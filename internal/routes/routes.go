package routes

import (
	"thrivecms/internal/handlers"
	"thrivecms/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	contentHandler *handlers.ContentHandler,
	heroHandler *handlers.HeroHandler,
	serviceHandler *handlers.ServiceHandler,
	teamHandler *handlers.TeamHandler,
	aboutHandler *handlers.AboutHandler,
	contactHandler *handlers.ContactHandler,
	contactFormHandler *handlers.ContactFormHandler,
	footerHandler *handlers.FooterHandler,
	settingsHandler *handlers.SettingsHandler,
	legalHandler *handlers.LegalHandler,
	headerHandler *handlers.HeaderMenuHandler,
	submissionHandler *handlers.SubmissionHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/content", contentHandler.GetContent).Methods("GET")

	api.HandleFunc("/hero-slides", heroHandler.ListHeroSlides).Methods("GET")
	api.HandleFunc("/services", serviceHandler.ListServices).Methods("GET")
	api.HandleFunc("/teams", teamHandler.ListTeam).Methods("GET")
	api.HandleFunc("/abouts", aboutHandler.ListAbouts).Methods("GET")
	api.HandleFunc("/contacts", contactHandler.ListContacts).Methods("GET")
	api.HandleFunc("/contact-form", contactFormHandler.GetContactForm).Methods("GET")
	api.HandleFunc("/footers", footerHandler.ListFooters).Methods("GET")
	api.HandleFunc("/site-settings", settingsHandler.ListSettings).Methods("GET")
	api.HandleFunc("/header-menus", headerHandler.ListHeaderMenus).Methods("GET")

	api.HandleFunc("/privacy-policies", legalHandler.ListPolicies).Methods("GET")
	api.HandleFunc("/terms", legalHandler.ListTerms).Methods("GET")
	api.HandleFunc("/disclaimers", legalHandler.ListDisclaimers).Methods("GET")

	api.HandleFunc("/contact-submissions", submissionHandler.SubmitContactForm).Methods("POST")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(jwtSecret))

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OnlyRole("admin"))
	admin.Use(middleware.RateLimit(10, 20))

	admin.HandleFunc("/content/refresh", contentHandler.RefreshContent).Methods("POST")

	admin.HandleFunc("/hero-slides", heroHandler.CreateHeroSlide).Methods("POST")
	admin.HandleFunc("/hero-slides/{id}", heroHandler.UpdateHeroSlide).Methods("POST")
	admin.HandleFunc("/hero-slides/{id}", heroHandler.DeleteHeroSlide).Methods("DELETE")

	admin.HandleFunc("/services", serviceHandler.CreateService).Methods("POST")
	admin.HandleFunc("/services/{id}", serviceHandler.UpdateService).Methods("PUT")
	admin.HandleFunc("/services/{id}", serviceHandler.DeleteService).Methods("DELETE")

	// мультичасть-формы: обновление идёт POST-ом, метод переопределяется полем _method
	admin.HandleFunc("/teams", teamHandler.CreateTeamMember).Methods("POST")
	admin.HandleFunc("/teams/{id}", teamHandler.UpdateTeamMember).Methods("POST")
	admin.HandleFunc("/teams/{id}", teamHandler.DeleteTeamMember).Methods("DELETE")

	admin.HandleFunc("/abouts", aboutHandler.CreateAbout).Methods("POST")
	admin.HandleFunc("/abouts/{id}", aboutHandler.UpdateAbout).Methods("POST")
	admin.HandleFunc("/abouts/{id}", aboutHandler.DeleteAbout).Methods("DELETE")

	admin.HandleFunc("/contacts/{id}", contactHandler.UpdateContact).Methods("PUT")
	admin.HandleFunc("/contact-form", contactFormHandler.UpdateContactForm).Methods("PUT")

	admin.HandleFunc("/footers", footerHandler.CreateFooter).Methods("POST")
	admin.HandleFunc("/footers/{id}", footerHandler.UpdateFooter).Methods("POST")
	admin.HandleFunc("/footers/{id}", footerHandler.DeleteFooter).Methods("DELETE")
	admin.HandleFunc("/footers/{id}/activate", footerHandler.ActivateFooter).Methods("POST")

	admin.HandleFunc("/site-settings", settingsHandler.CreateSetting).Methods("POST")
	admin.HandleFunc("/site-settings/{id}", settingsHandler.UpdateSetting).Methods("POST")
	admin.HandleFunc("/site-settings/{id}", settingsHandler.DeleteSetting).Methods("DELETE")
	admin.HandleFunc("/site-settings/{id}/activate", settingsHandler.ActivateSetting).Methods("POST")

	admin.HandleFunc("/header-menus", headerHandler.CreateHeaderMenu).Methods("POST")
	admin.HandleFunc("/header-menus/{id}", headerHandler.UpdateHeaderMenu).Methods("PUT")
	admin.HandleFunc("/header-menus/{id}", headerHandler.DeleteHeaderMenu).Methods("DELETE")
	admin.HandleFunc("/header-menus/{id}/activate", headerHandler.ActivateHeaderMenu).Methods("POST")

	admin.HandleFunc("/privacy-policies", legalHandler.CreatePolicy).Methods("POST")
	admin.HandleFunc("/privacy-policies/{id}", legalHandler.UpdatePolicy).Methods("PUT")
	admin.HandleFunc("/privacy-policies/{id}", legalHandler.DeletePolicy).Methods("DELETE")
	admin.HandleFunc("/privacy-policies/{id}/activate", legalHandler.ActivatePolicy).Methods("POST")

	admin.HandleFunc("/terms", legalHandler.CreateTerm).Methods("POST")
	admin.HandleFunc("/terms/{id}", legalHandler.UpdateTerm).Methods("PUT")
	admin.HandleFunc("/terms/{id}", legalHandler.DeleteTerm).Methods("DELETE")
	admin.HandleFunc("/terms/{id}/activate", legalHandler.ActivateTerm).Methods("POST")

	admin.HandleFunc("/disclaimers", legalHandler.CreateDisclaimer).Methods("POST")
	admin.HandleFunc("/disclaimers/{id}", legalHandler.UpdateDisclaimer).Methods("PUT")
	admin.HandleFunc("/disclaimers/{id}", legalHandler.DeleteDisclaimer).Methods("DELETE")
	admin.HandleFunc("/disclaimers/{id}/activate", legalHandler.ActivateDisclaimer).Methods("POST")

	admin.HandleFunc("/contact-submissions", submissionHandler.ListSubmissions).Methods("GET")
	admin.HandleFunc("/contact-submissions/{id}/read", submissionHandler.MarkSubmissionRead).Methods("POST")
	admin.HandleFunc("/contact-submissions/{id}/replied", submissionHandler.MarkSubmissionReplied).Methods("POST")
	admin.HandleFunc("/contact-submissions/{id}", submissionHandler.DeleteSubmission).Methods("DELETE")
}
