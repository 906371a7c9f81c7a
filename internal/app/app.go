package app

import (
	"context"
	"slices"
	"sync"
	"time"

	"thrivecms/internal/cache"
	"thrivecms/internal/config"
	"thrivecms/internal/content"
	"thrivecms/internal/contentapi"
	"thrivecms/internal/controller"
	"thrivecms/internal/handlers"
	"thrivecms/internal/logger"
	"thrivecms/internal/models"
	"thrivecms/internal/retry"
	"thrivecms/internal/routes"
	"thrivecms/internal/snapshot"
	"thrivecms/internal/syncer"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Registry держит все syncer-коллекции и умеет обновлять их разом.
// Это то, что хендлер контента видит как Refresher.
type Registry struct {
	refresh []func(ctx context.Context, force bool)
	warm    []func(ctx context.Context)
}

func (r *Registry) add(refresh func(ctx context.Context, force bool), warm func(ctx context.Context)) {
	r.refresh = append(r.refresh, refresh)
	r.warm = append(r.warm, warm)
}

// RefreshAll обновляет все коллекции параллельно. Каждая коллекция сама
// решает, нужен ли ей сетевой вызов (force=false уважает TTL кэша).
func (r *Registry) RefreshAll(ctx context.Context, force bool) {
	var wg sync.WaitGroup
	for _, fn := range r.refresh {
		wg.Add(1)
		go func(fn func(context.Context, bool)) {
			defer wg.Done()
			fn(ctx, force)
		}(fn)
	}
	wg.Wait()
}

// WarmStart поднимает снапшоты всех коллекций до первого сетевого вызова.
func (r *Registry) WarmStart(ctx context.Context) {
	for _, fn := range r.warm {
		fn(ctx)
	}
}

// InitApp собирает приложение и возвращает роутер вместе с функцией
// остановки (планировщик и снапшот-хранилище закрываются при выключении).
func InitApp(ctx context.Context, cfg *config.Config) (*mux.Router, func(), error) {
	snap, err := snapshot.New(ctx, snapshot.Config{
		Backend:  cfg.SnapshotBackend,
		RedisURL: cfg.RedisURL,
		DSN:      cfg.GetDSN(),
	})
	if err != nil {
		return nil, nil, err
	}
	if snap != nil {
		logger.Log.Info("Снапшот-хранилище подключено", zap.String("backend", cfg.SnapshotBackend))
	}

	client := contentapi.NewClient(cfg.ContentAPIURL, cfg.ContentAPIToken, cfg.HTTPTimeoutDuration())
	assetBase := cfg.AssetBaseURL

	// Ресурсы контент-бэкенда
	heroAPI := contentapi.NewResource[models.HeroSlide](client, "hero-slides")
	serviceAPI := contentapi.NewResource[models.Service](client, "services")
	teamAPI := contentapi.NewResource[models.TeamMember](client, "teams")
	aboutAPI := contentapi.NewResource[models.About](client, "abouts")
	contactAPI := contentapi.NewResource[models.Contact](client, "contacts")
	footerAPI := contentapi.NewResource[models.FooterData](client, "footers")
	settingAPI := contentapi.NewResource[models.SiteSetting](client, "site-settings")
	headerAPI := contentapi.NewResource[models.HeaderMenu](client, "header-menus")
	policyAPI := contentapi.NewResource[models.PrivacyPolicy](client, "privacy-policies")
	termAPI := contentapi.NewResource[models.Term](client, "terms")
	disclaimerAPI := contentapi.NewResource[models.Disclaimer](client, "disclaimers")
	submissionAPI := contentapi.NewResource[models.ContactSubmission](client, "contact-submissions")

	policy := retry.NewPolicy(cfg.MaxRetriesInt(), cfg.RetryBaseDelayDuration())
	ttl := cfg.CacheTTLDuration()
	doc := content.NewDocument()
	registry := &Registry{}

	heroCol := syncer.New(syncer.Options[models.HeroSlide]{
		Name:   "hero-slides",
		Store:  cache.NewStore[models.HeroSlide]("hero-slides", snap),
		Policy: policy,
		TTL:    ttl,
		List:   heroAPI.List,
		Normalize: func(items []models.HeroSlide) []models.HeroSlide {
			for i := range items {
				items[i].Image = contentapi.AbsoluteImageURL(assetBase, items[i].Image)
			}
			slices.SortStableFunc(items, func(a, b models.HeroSlide) int {
				return a.OrderIndex - b.OrderIndex
			})
			return items
		},
		Merge: doc.MergeHeroSlides,
	})
	registry.add(heroCol.Fetch, heroCol.WarmStart)

	serviceCol := syncer.New(syncer.Options[models.Service]{
		Name:   "services",
		Store:  cache.NewStore[models.Service]("services", snap),
		Policy: policy,
		TTL:    ttl,
		List:   serviceAPI.List,
		Merge:  doc.MergeServices,
	})
	registry.add(serviceCol.Fetch, serviceCol.WarmStart)

	teamCol := syncer.New(syncer.Options[models.TeamMember]{
		Name:   "teams",
		Store:  cache.NewStore[models.TeamMember]("teams", snap),
		Policy: policy,
		TTL:    ttl,
		List:   teamAPI.List,
		Normalize: func(items []models.TeamMember) []models.TeamMember {
			for i := range items {
				items[i].Image = contentapi.AbsoluteImageURL(assetBase, items[i].Image)
			}
			return items
		},
		Merge: doc.MergeTeam,
	})
	registry.add(teamCol.Fetch, teamCol.WarmStart)

	aboutCol := syncer.New(syncer.Options[models.About]{
		Name:   "abouts",
		Store:  cache.NewStore[models.About]("abouts", snap),
		Policy: policy,
		TTL:    ttl,
		List:   aboutAPI.List,
		Normalize: func(items []models.About) []models.About {
			for i := range items {
				items[i].Image = contentapi.AbsoluteImageURL(assetBase, items[i].Image)
			}
			return items
		},
		Merge: doc.MergeAbouts,
	})
	registry.add(aboutCol.Fetch, aboutCol.WarmStart)

	contactCol := syncer.New(syncer.Options[models.Contact]{
		Name:   "contacts",
		Store:  cache.NewStore[models.Contact]("contacts", snap),
		Policy: policy,
		TTL:    ttl,
		List:   contactAPI.List,
		Merge:  doc.MergeContacts,
	})
	registry.add(contactCol.Fetch, contactCol.WarmStart)

	footerCol := syncer.New(syncer.Options[models.FooterData]{
		Name:   "footers",
		Store:  cache.NewStore[models.FooterData]("footers", snap),
		Policy: policy,
		TTL:    ttl,
		List:   footerAPI.List,
		Normalize: func(items []models.FooterData) []models.FooterData {
			for i := range items {
				items[i].Logo = contentapi.AbsoluteImageURL(assetBase, items[i].Logo)
			}
			return items
		},
		Merge: doc.MergeFooters,
	})
	registry.add(footerCol.Fetch, footerCol.WarmStart)

	settingCol := syncer.New(syncer.Options[models.SiteSetting]{
		Name:   "site-settings",
		Store:  cache.NewStore[models.SiteSetting]("site-settings", snap),
		Policy: policy,
		TTL:    ttl,
		List:   settingAPI.List,
		Normalize: func(items []models.SiteSetting) []models.SiteSetting {
			for i := range items {
				items[i].Logo = contentapi.AbsoluteImageURL(assetBase, items[i].Logo)
			}
			return items
		},
	})
	registry.add(settingCol.Fetch, settingCol.WarmStart)

	headerCol := syncer.New(syncer.Options[models.HeaderMenu]{
		Name:   "header-menus",
		Store:  cache.NewStore[models.HeaderMenu]("header-menus", snap),
		Policy: policy,
		TTL:    ttl,
		List:   headerAPI.List,
	})
	registry.add(headerCol.Fetch, headerCol.WarmStart)

	policyCol := syncer.New(syncer.Options[models.PrivacyPolicy]{
		Name:   "privacy-policies",
		Store:  cache.NewStore[models.PrivacyPolicy]("privacy-policies", snap),
		Policy: policy,
		TTL:    ttl,
		List:   policyAPI.List,
	})
	registry.add(policyCol.Fetch, policyCol.WarmStart)

	termCol := syncer.New(syncer.Options[models.Term]{
		Name:   "terms",
		Store:  cache.NewStore[models.Term]("terms", snap),
		Policy: policy,
		TTL:    ttl,
		List:   termAPI.List,
	})
	registry.add(termCol.Fetch, termCol.WarmStart)

	disclaimerCol := syncer.New(syncer.Options[models.Disclaimer]{
		Name:   "disclaimers",
		Store:  cache.NewStore[models.Disclaimer]("disclaimers", snap),
		Policy: policy,
		TTL:    ttl,
		List:   disclaimerAPI.List,
	})
	registry.add(disclaimerCol.Fetch, disclaimerCol.WarmStart)

	submissionCol := syncer.New(syncer.Options[models.ContactSubmission]{
		Name:   "contact-submissions",
		Store:  cache.NewStore[models.ContactSubmission]("contact-submissions", snap),
		Policy: policy,
		TTL:    ttl,
		List:   submissionAPI.List,
	})
	// Снапшоты заявок не греем: админка всегда хочет свежий список.
	registry.add(submissionCol.Fetch, func(context.Context) {})

	// Секции админки
	heroSection := controller.NewSection(controller.SectionOptions[models.HeroSlide]{
		Name:       "hero-slides",
		API:        heroAPI,
		Collection: heroCol,
		GetID:      func(s models.HeroSlide) string { return s.ID },
		SetID:      func(s *models.HeroSlide, id string) { s.ID = id },
	})

	serviceSection := controller.NewSection(controller.SectionOptions[models.Service]{
		Name:       "services",
		API:        serviceAPI,
		Collection: serviceCol,
		GetID:      func(s models.Service) string { return s.ID },
		SetID:      func(s *models.Service, id string) { s.ID = id },
	})

	teamSection := controller.NewSection(controller.SectionOptions[models.TeamMember]{
		Name:       "teams",
		API:        teamAPI,
		Collection: teamCol,
		GetID:      func(m models.TeamMember) string { return m.ID },
		SetID:      func(m *models.TeamMember, id string) { m.ID = id },
	})

	aboutSection := controller.NewSection(controller.SectionOptions[models.About]{
		Name:       "abouts",
		API:        aboutAPI,
		Collection: aboutCol,
		GetID:      func(a models.About) string { return a.ID },
		SetID:      func(a *models.About, id string) { a.ID = id },
	})

	contactSection := controller.NewSection(controller.SectionOptions[models.Contact]{
		Name:       "contacts",
		API:        contactAPI,
		Collection: contactCol,
		GetID:      func(c models.Contact) string { return c.ID },
		SetID:      func(c *models.Contact, id string) { c.ID = id },
	})

	footerSection := controller.NewSection(controller.SectionOptions[models.FooterData]{
		Name:       "footers",
		API:        footerAPI,
		Collection: footerCol,
		GetID:      func(f models.FooterData) string { return f.ID },
		SetID:      func(f *models.FooterData, id string) { f.ID = id },
		Activator:  footerAPI,
		SetActive:  func(f *models.FooterData, v bool) { f.IsActive = v },
	})

	settingSection := controller.NewSection(controller.SectionOptions[models.SiteSetting]{
		Name:       "site-settings",
		API:        settingAPI,
		Collection: settingCol,
		GetID:      func(s models.SiteSetting) string { return s.ID },
		SetID:      func(s *models.SiteSetting, id string) { s.ID = id },
		Activator:  settingAPI,
		SetActive:  func(s *models.SiteSetting, v bool) { s.IsActive = v },
	})

	headerSection := controller.NewSection(controller.SectionOptions[models.HeaderMenu]{
		Name:       "header-menus",
		API:        headerAPI,
		Collection: headerCol,
		GetID:      func(m models.HeaderMenu) string { return m.ID },
		SetID:      func(m *models.HeaderMenu, id string) { m.ID = id },
		Activator:  headerAPI,
		SetActive:  func(m *models.HeaderMenu, v bool) { m.IsActive = v },
	})

	policySection := controller.NewSection(controller.SectionOptions[models.PrivacyPolicy]{
		Name:       "privacy-policies",
		API:        policyAPI,
		Collection: policyCol,
		GetID:      func(p models.PrivacyPolicy) string { return p.ID },
		SetID:      func(p *models.PrivacyPolicy, id string) { p.ID = id },
		Activator:  policyAPI,
		SetActive:  func(p *models.PrivacyPolicy, v bool) { p.IsActive = v },
	})

	termSection := controller.NewSection(controller.SectionOptions[models.Term]{
		Name:       "terms",
		API:        termAPI,
		Collection: termCol,
		GetID:      func(t models.Term) string { return t.ID },
		SetID:      func(t *models.Term, id string) { t.ID = id },
		Activator:  termAPI,
		SetActive:  func(t *models.Term, v bool) { t.IsActive = v },
	})

	disclaimerSection := controller.NewSection(controller.SectionOptions[models.Disclaimer]{
		Name:       "disclaimers",
		API:        disclaimerAPI,
		Collection: disclaimerCol,
		GetID:      func(d models.Disclaimer) string { return d.ID },
		SetID:      func(d *models.Disclaimer, id string) { d.ID = id },
		Activator:  disclaimerAPI,
		SetActive:  func(d *models.Disclaimer, v bool) { d.IsActive = v },
	})

	submissions := controller.NewSubmissions(submissionCol, submissionAPI)

	// Хендлеры
	contentHandler := handlers.NewContentHandler(doc, registry)
	heroHandler := handlers.NewHeroHandler(heroSection, heroAPI)
	serviceHandler := handlers.NewServiceHandler(serviceSection)
	teamHandler := handlers.NewTeamHandler(teamSection, teamAPI)
	aboutHandler := handlers.NewAboutHandler(aboutSection, aboutAPI)
	contactHandler := handlers.NewContactHandler(contactSection)
	contactFormHandler := handlers.NewContactFormHandler(doc, snap)
	footerHandler := handlers.NewFooterHandler(footerSection, footerAPI)
	settingsHandler := handlers.NewSettingsHandler(settingSection, settingAPI)
	legalHandler := handlers.NewLegalHandler(policySection, termSection, disclaimerSection)
	headerHandler := handlers.NewHeaderMenuHandler(headerSection)
	submissionHandler := handlers.NewSubmissionHandler(submissions, submissionAPI)

	// Снапшоты поднимаем до первого запроса, чтобы сайт не встречал
	// посетителей пустым документом при лежащем бэкенде.
	registry.WarmStart(ctx)
	contactFormHandler.WarmStart(ctx)

	scheduler := startBackgroundRefresh(ctx, registry, cfg.RefreshIntervalDuration())

	router := mux.NewRouter()
	routes.InitRoutes(router, cfg.JWTSecret,
		contentHandler, heroHandler, serviceHandler, teamHandler, aboutHandler,
		contactHandler, contactFormHandler, footerHandler, settingsHandler,
		legalHandler, headerHandler, submissionHandler)

	cleanup := func() {
		if scheduler != nil {
			scheduler.Stop()
		}
		if snap != nil {
			if err := snap.Close(); err != nil {
				logger.Log.Warn("Ошибка закрытия снапшот-хранилища", zap.Error(err))
			}
		}
	}
	return router, cleanup, nil
}

// startBackgroundRefresh периодически обновляет все коллекции, чтобы
// публичный сайт не платил задержкой за протухший кэш.
func startBackgroundRefresh(ctx context.Context, registry *Registry, interval time.Duration) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@every "+interval.String(), func() {
		refreshCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		registry.RefreshAll(refreshCtx, true)
		logger.Log.Debug("Фоновое обновление контента завершено")
	})
	if err != nil {
		logger.Log.Warn("Фоновое обновление не запущено", zap.Error(err))
		return nil
	}
	c.Start()
	logger.Log.Info("Фоновое обновление контента запущено", zap.Duration("interval", interval))
	return c
}
