package config

import (
	"DishAndMovie/internal/api/handlers"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/api/routes"
	"DishAndMovie/internal/middleware"
	"DishAndMovie/internal/utils"
	"DishAndMovie/internal/utils/storage"
	"DishAndMovie/internal/views"
	"DishAndMovie/pkg/genre"
	"DishAndMovie/pkg/ingredient"
	"DishAndMovie/pkg/jwt"
	"DishAndMovie/pkg/mealplan"
	"DishAndMovie/pkg/movie"
	"DishAndMovie/pkg/origin"
	"DishAndMovie/pkg/recipe"
	"DishAndMovie/pkg/review"
	"DishAndMovie/pkg/user"
	"DishAndMovie/pkg/weather"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"gorm.io/gorm"
)

const serviceName = "dishandmovie"

// NewApp builds the fiber application with its global middleware, metrics
// endpoint and every route.
func NewApp(db *gorm.DB, cfg utils.Config) (*fiber.App, io.Closer, error) {
	app := fiber.New(fiber.Config{
		Views:             views.NewEngine(),
		PassLocalsToViews: true,
		ErrorHandler:      errorHandler,
		BodyLimit:         10 * 1024 * 1024,
	})

	// setting up logging and limiter
	logOutput, err := openLogOutput(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     logOutput,
	}))
	app.Use(compress.New())
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	prometheus := fiberprometheus.New(serviceName)
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	if err := RegisterRoutes(app, db, cfg); err != nil {
		_ = logOutput.Close()
		return nil, nil, err
	}
	return app, logOutput, nil
}

// RegisterRoutes wires repositories, services and handlers onto app.
func RegisterRoutes(app *fiber.App, db *gorm.DB, cfg utils.Config) error {
	utils.InitValidator()
	validator := utils.Validate
	middlewares := middleware.NewMiddleware(cfg.CORSAllowOrigins)

	// utils
	fileStorage, err := storage.New(context.Background(), cfg)
	if err != nil {
		return err
	}
	if cfg.StorageDriver == "" || cfg.StorageDriver == storage.DriverLocal {
		app.Static("/uploads", filepath.Join(cfg.StoragePublicRoot, "uploads"))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	originRepository := origin.NewOriginRepository(db)
	genreRepository := genre.NewGenreRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	movieRepository := movie.NewMovieRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)

	// Service
	tokenTTL := time.Duration(cfg.JWTTTLMinutes) * time.Minute
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, tokenTTL)
	userService := user.NewUserService(userRepository, jwtService)
	originService := origin.NewOriginService(originRepository)
	genreService := genre.NewGenreService(genreRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	movieService := movie.NewMovieService(movieRepository, originRepository, fileStorage)
	recipeService := recipe.NewRecipeService(recipeRepository, originRepository, ingredientRepository)
	reviewService := review.NewReviewService(reviewRepository, movieRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository)
	weatherService := weather.NewWeatherService(cfg.WeatherBaseURL, time.Duration(cfg.WeatherTimeoutSeconds)*time.Second)

	// routes
	routesConfig := routes.Config{
		App:        app,
		Middleware: middlewares,
		JWTService: jwtService,

		HealthHandler:     handlers.NewHealthHandler(db),
		AccountHandler:    handlers.NewAccountHandler(userService, validator, tokenTTL),
		OriginHandler:     handlers.NewOriginHandler(originService, movieService, recipeService, validator),
		GenreHandler:      handlers.NewGenreHandler(genreService, validator),
		IngredientHandler: handlers.NewIngredientHandler(ingredientService, validator),
		MovieHandler:      handlers.NewMovieHandler(movieService, reviewService, validator),
		RecipeHandler:     handlers.NewRecipeHandler(recipeService, validator),
		MealPlanHandler:   handlers.NewMealPlanHandler(mealPlanService, validator),
		WeatherHandler:    handlers.NewWeatherHandler(weatherService),

		AccountPageHandler:    handlers.NewAccountPageHandler(userService, validator, tokenTTL),
		OriginPageHandler:     handlers.NewOriginPageHandler(originService, movieService, recipeService, validator),
		GenrePageHandler:      handlers.NewGenrePageHandler(genreService, validator),
		IngredientPageHandler: handlers.NewIngredientPageHandler(ingredientService, validator),
		MoviePageHandler:      handlers.NewMoviePageHandler(movieService, reviewService, originService, genreService, validator),
		RecipePageHandler:     handlers.NewRecipePageHandler(recipeService, originService, ingredientService, validator),
		MealPlanPageHandler:   handlers.NewMealPlanPageHandler(mealPlanService, validator),
		WeatherPageHandler:    handlers.NewWeatherPageHandler(weatherService),
	}
	routesConfig.Setup()
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openLogOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// errorHandler answers JSON under /api and the error view elsewhere.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.OriginalURL(), err)
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return presenters.ErrorResponse(c, code, fiberutils.StatusMessage(code), err)
	}
	return presenters.RenderError(c, code, err.Error())
}
