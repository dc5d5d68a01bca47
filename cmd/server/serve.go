package main

import (
	"context"
	"fmt"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/buzkaaclicker/folio/filestore"
	"github.com/buzkaaclicker/folio/media"
	"github.com/buzkaaclicker/folio/persistent"
	"github.com/buzkaaclicker/folio/repository"
	"github.com/buzkaaclicker/folio/stats"
	"github.com/buzkaaclicker/folio/supabase"
	"github.com/buzkaaclicker/folio/transport/rest"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tidwall/buntdb"
	"github.com/uptrace/bun"
)

const uploadsPath = "/uploads"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page and its api",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(configFromEnv())
	},
}

// Table stores for the page and the privileged ones for setup endpoints.
type stores struct {
	projects folio.ProjectStore
	profiles folio.ProfileStore
	hobbies  folio.HobbyStore

	setupProber   folio.TableProber
	setupProjects folio.ProjectStore
	createSchema  func(ctx context.Context) error
}

func postgresStores(db *bun.DB) stores {
	projects := &persistent.ProjectStore{DB: db}
	return stores{
		projects:      projects,
		profiles:      &persistent.ProfileStore{DB: db},
		hobbies:       &persistent.HobbyStore{DB: db},
		setupProber:   &persistent.Prober{DB: db},
		setupProjects: projects,
		createSchema: func(ctx context.Context) error {
			return persistent.CreateSchema(ctx, db)
		},
	}
}

func supabaseStores(anon *supabase.Client, privileged *supabase.Client) stores {
	return stores{
		projects:      &supabase.ProjectStore{Client: anon},
		profiles:      &supabase.ProfileStore{Client: anon},
		hobbies:       &supabase.HobbyStore{Client: anon},
		setupProber:   &supabase.Prober{Client: privileged},
		setupProjects: &supabase.ProjectStore{Client: privileged},
	}
}

func assetBucket(cfg config, client *supabase.Client) folio.AssetBucket {
	if cfg.uploadDir != "" {
		return filestore.NewBucket(cfg.uploadDir, uploadsPath)
	}
	return &supabase.Bucket{Client: client, Name: cfg.supabaseBucket}
}

func listenAndServe(ctx context.Context, cfg config, s stores, bdb *buntdb.DB) func() error {
	statCache := &persistent.StatCache{Buntdb: bdb, TTL: stats.RefreshInterval}
	subscribers := &stats.Cached{
		Name: "youtube_subscribers",
		Fetcher: &stats.YouTube{
			ApiKey:    cfg.youtubeApiKey,
			ChannelId: cfg.youtubeChannelId,
		},
		Cache: statCache,
	}
	members := stats.Telegram{}
	board := &stats.Board{}
	poller := &stats.Poller{Subscribers: subscribers, Members: members, Board: board}
	go poller.Run(ctx)

	projects := &repository.Projects{Store: s.projects}
	profiles := &repository.Profiles{Store: s.profiles}
	hobbies := &repository.Hobbies{Store: s.hobbies}

	uploadClient := supabase.NewClient(cfg.supabaseUrl, cfg.supabaseAnonKey)
	uploader := &media.Uploader{Bucket: assetBucket(cfg, uploadClient), Prefix: media.DefaultPrefix}

	projectController := rest.ProjectController{Repository: projects}
	profileController := rest.ProfileController{Repository: profiles}
	hobbyController := rest.HobbyController{Repository: hobbies}
	uploadController := rest.UploadController{Uploader: uploader}
	statsController := rest.StatsController{Subscribers: subscribers, Members: members}
	setupController := rest.SetupController{
		Prober:       s.setupProber,
		Projects:     s.setupProjects,
		CreateSchema: s.createSchema,
	}
	pageController := rest.PageController{
		Profiles: profiles,
		Hobbies:  hobbies,
		Projects: projects,
		Board:    board,
	}

	server := fiber.New(fiber.Config{BodyLimit: 8 * 1024 * 1024})
	server.Use(recover.New())
	server.Use(rest.LogHandler())

	api := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: rest.ErrorHandler,
	})
	api.Use(cors.New(cors.Config{AllowOrigins: cfg.allowOrigins}))

	api.Get("/status", monitor.New())
	projectController.InstallTo(api)
	profileController.InstallTo(api)
	hobbyController.InstallTo(api)
	uploadController.InstallTo(api)
	statsController.InstallTo(api)
	setupController.InstallTo(api)
	pageController.InstallTo(api)
	api.Use(rest.NotFoundHandler)
	server.Mount("/api/", api)

	if cfg.uploadDir != "" {
		server.Static(uploadsPath, cfg.uploadDir, fiber.Static{Browse: false})
	}
	server.Static("/", "./www/", fiber.Static{
		Browse: false,
		Index:  "index.html",
	})

	server.Use(rest.NotFoundHandler)

	go func() {
		if err := server.Listen(cfg.listenAddr); err != nil {
			logrus.WithError(err).Fatalln("Could not listen.")
		}
	}()

	return func() error {
		return server.Shutdown()
	}
}

func serve(cfg config) error {
	logrus.Infoln("Starting backend.")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bdb, err := buntdb.Open(cfg.kvPath)
	if err != nil {
		return fmt.Errorf("open buntdb: %w", err)
	}
	defer bdb.Close()

	var s stores
	if cfg.pgDsn != "" {
		logrus.Infoln("Opening database.")
		db, err := persistent.PgOpen(ctx, cfg.pgDsn)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()
		s = postgresStores(db)
	} else {
		anon := supabase.NewClient(cfg.supabaseUrl, cfg.supabaseAnonKey)
		if !anon.Configured() {
			logrus.Warnln("Supabase credentials not configured, serving built-in content.")
		}
		s = supabaseStores(anon, supabase.NewClient(cfg.supabaseUrl, cfg.supabaseServiceKey))
	}
	if cfg.youtubeApiKey == "" {
		logrus.Warnln("YOUTUBE_API_KEY not set, subscriber count stays at the default.")
	}

	logrus.WithField("addr", cfg.listenAddr).Infoln("Starting listening... To shut down use ^C")
	shutdown := listenAndServe(ctx, cfg, s, bdb)

	awaitInterruption()

	logrus.Infoln("Shutting down...")
	cancel()
	if err := shutdown(); err != nil {
		logrus.WithError(err).Warningln("Fiber shutdown failed.")
	}
	return nil
}
