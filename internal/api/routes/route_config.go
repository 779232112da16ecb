package routes

import (
	"DishAndMovie/internal/api/handlers"
	"DishAndMovie/internal/middleware"
	"DishAndMovie/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App        *fiber.App
	Middleware middleware.Middleware
	JWTService jwt.JWTService

	HealthHandler     handlers.HealthHandler
	AccountHandler    handlers.AccountHandler
	OriginHandler     handlers.OriginHandler
	GenreHandler      handlers.GenreHandler
	IngredientHandler handlers.IngredientHandler
	MovieHandler      handlers.MovieHandler
	RecipeHandler     handlers.RecipeHandler
	MealPlanHandler   handlers.MealPlanHandler
	WeatherHandler    handlers.WeatherHandler

	AccountPageHandler    handlers.AccountPageHandler
	OriginPageHandler     handlers.OriginPageHandler
	GenrePageHandler      handlers.GenrePageHandler
	IngredientPageHandler handlers.IngredientPageHandler
	MoviePageHandler      handlers.MoviePageHandler
	RecipePageHandler     handlers.RecipePageHandler
	MealPlanPageHandler   handlers.MealPlanPageHandler
	WeatherPageHandler    handlers.WeatherPageHandler

	pageCSRF fiber.Handler
}

// crudPages is the page surface shared by every resource.
type crudPages interface {
	List(c *fiber.Ctx) error
	Details(c *fiber.Ctx) error
	New(c *fiber.Ctx) error
	Add(c *fiber.Ctx) error
	Edit(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	ConfirmDelete(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func (c *Config) Setup() {
	c.pageCSRF = c.Middleware.CSRFMiddleware()

	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Account()
	c.Origin()
	c.Genre()
	c.Ingredient()
	c.Movies()
	c.Recipe()
	c.MealPlan()
	c.Weather()
	c.Pages()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) pageAuth() fiber.Handler {
	return c.Middleware.PageAuthMiddleware(c.JWTService)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", c.HealthHandler.Ping)
	c.App.Get("/api/health", c.HealthHandler.Health)
}

func (c *Config) Account() {
	account := c.App.Group("/api/Account")
	{
		account.Post("/Register", c.AccountHandler.Register)
		account.Post("/Login", c.AccountHandler.Login)
		account.Post("/Logout", c.AccountHandler.Logout)
		account.Get("/Me", c.auth(), c.AccountHandler.Me)
	}
}

func (c *Config) Origin() {
	origin := c.App.Group("/api/Origin")
	{
		origin.Get("/ListOrigins", c.OriginHandler.ListOrigins)
		origin.Get("/FindOrigin/:id", c.OriginHandler.FindOrigin)
		origin.Post("/AddOrigin", c.auth(), c.OriginHandler.AddOrigin)
		origin.Put("/UpdateOrigin/:id", c.auth(), c.OriginHandler.UpdateOrigin)
		origin.Delete("/DeleteOrigin/:id", c.auth(), c.OriginHandler.DeleteOrigin)
		origin.Get("/:originId/movies", c.OriginHandler.GetMoviesByOrigin)
		origin.Get("/:originId/recipes", c.OriginHandler.GetRecipesByOrigin)
	}
}

func (c *Config) Genre() {
	genre := c.App.Group("/api/Genre")
	{
		genre.Get("/ListGenres", c.GenreHandler.ListGenres)
		genre.Get("/FindGenre/:id", c.GenreHandler.FindGenre)
		genre.Post("/AddGenre", c.auth(), c.GenreHandler.AddGenre)
		genre.Put("/UpdateGenre/:id", c.auth(), c.GenreHandler.UpdateGenre)
		genre.Delete("/DeleteGenre/:id", c.auth(), c.GenreHandler.DeleteGenre)
	}
}

func (c *Config) Ingredient() {
	ingredient := c.App.Group("/api/Ingredient")
	{
		ingredient.Get("/ListIngredients", c.IngredientHandler.ListIngredients)
		ingredient.Get("/FindIngredient/:id", c.IngredientHandler.FindIngredient)
		ingredient.Post("/AddIngredient", c.auth(), c.IngredientHandler.AddIngredient)
		ingredient.Put("/UpdateIngredient/:id", c.auth(), c.IngredientHandler.UpdateIngredient)
		ingredient.Delete("/DeleteIngredient/:id", c.auth(), c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Movies() {
	movies := c.App.Group("/api/Movies")
	{
		movies.Get("/ListMovies", c.MovieHandler.ListMovies)
		movies.Get("/FindMovie/:id", c.MovieHandler.FindMovie)
		movies.Post("/AddMovie", c.auth(), c.MovieHandler.AddMovie)
		movies.Put("/UpdateMovie/:id", c.auth(), c.MovieHandler.UpdateMovie)
		movies.Delete("/DeleteMovie/:id", c.auth(), c.MovieHandler.DeleteMovie)

		movies.Get("/:movieId/reviews", c.MovieHandler.ListReviews)
		movies.Post("/:movieId/reviews", c.auth(), c.MovieHandler.AddReview)
		movies.Put("/:movieId/reviews/:reviewId", c.auth(), c.MovieHandler.UpdateReview)
		movies.Delete("/:movieId/reviews/:reviewId", c.auth(), c.MovieHandler.DeleteReview)
	}
}

func (c *Config) Recipe() {
	recipe := c.App.Group("/api/Recipe")
	{
		recipe.Get("/ListRecipes", c.RecipeHandler.ListRecipes)
		recipe.Get("/FindRecipe/:id", c.RecipeHandler.FindRecipe)
		recipe.Post("/AddRecipe", c.auth(), c.RecipeHandler.AddRecipe)
		recipe.Put("/UpdateRecipe/:id", c.auth(), c.RecipeHandler.UpdateRecipe)
		recipe.Delete("/DeleteRecipe/:id", c.auth(), c.RecipeHandler.DeleteRecipe)

		recipe.Get("/:recipeId/ingredients", c.RecipeHandler.ListIngredients)
		recipe.Post("/:recipeId/ingredients", c.auth(), c.RecipeHandler.AddIngredient)
		recipe.Delete("/:recipeId/ingredients/:ingredientId", c.auth(), c.RecipeHandler.RemoveIngredient)
	}
}

func (c *Config) MealPlan() {
	mealPlan := c.App.Group("/api/MealPlan")
	{
		mealPlan.Get("/ListMealPlans", c.MealPlanHandler.ListMealPlans)
		mealPlan.Get("/FindMealPlan/:id", c.MealPlanHandler.FindMealPlan)
		mealPlan.Post("/AddMealPlan", c.auth(), c.MealPlanHandler.AddMealPlan)
		mealPlan.Put("/UpdateMealPlan/:id", c.auth(), c.MealPlanHandler.UpdateMealPlan)
		mealPlan.Delete("/DeleteMealPlan/:id", c.auth(), c.MealPlanHandler.DeleteMealPlan)
	}
}

func (c *Config) Weather() {
	c.App.Get("/api/Weather/:city", c.WeatherHandler.GetWeather)
}

// pages opens a page group: the user is identified when signed in and every
// form post must carry the form token.
func (c *Config) pages(prefix string) fiber.Router {
	return c.App.Group(prefix, c.Middleware.IdentifyUser(c.JWTService), c.pageCSRF)
}

// crud mounts the standard page routes under prefix. Reads are public;
// every form and state change requires a signed-in user.
func (c *Config) crud(prefix string, h crudPages) fiber.Router {
	group := c.pages(prefix)
	group.Get("/List", h.List)
	group.Get("/Details/:id", h.Details)
	group.Get("/New", c.pageAuth(), h.New)
	group.Post("/Add", c.pageAuth(), h.Add)
	group.Get("/Edit/:id", c.pageAuth(), h.Edit)
	group.Post("/Update/:id", c.pageAuth(), h.Update)
	group.Get("/ConfirmDelete/:id", c.pageAuth(), h.ConfirmDelete)
	group.Post("/Delete/:id", c.pageAuth(), h.Delete)
	return group
}

func (c *Config) Pages() {
	c.App.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Redirect("/MoviesPage/List")
	})

	c.crud("/OriginPage", c.OriginPageHandler)
	c.crud("/GenrePage", c.GenrePageHandler)
	c.crud("/IngredientPage", c.IngredientPageHandler)
	c.crud("/MealPlanPage", c.MealPlanPageHandler)

	movies := c.crud("/MoviesPage", c.MoviePageHandler)
	movies.Get("/Reviews/:movieId", c.MoviePageHandler.Reviews)
	movies.Get("/NewReview/:movieId", c.pageAuth(), c.MoviePageHandler.NewReview)
	movies.Post("/AddReview/:movieId", c.pageAuth(), c.MoviePageHandler.AddReview)
	movies.Get("/ConfirmDeleteReview/:movieId/:reviewId", c.pageAuth(), c.MoviePageHandler.ConfirmDeleteReview)
	movies.Post("/DeleteReview/:movieId/:reviewId", c.pageAuth(), c.MoviePageHandler.DeleteReview)

	recipes := c.crud("/RecipePage", c.RecipePageHandler)
	recipes.Post("/AddIngredient/:recipeId", c.pageAuth(), c.RecipePageHandler.AddIngredient)
	recipes.Post("/RemoveIngredient/:recipeId/:ingredientId", c.pageAuth(), c.RecipePageHandler.RemoveIngredient)

	account := c.pages("/Account")
	account.Get("/Login", c.AccountPageHandler.LoginForm)
	account.Post("/Login", c.AccountPageHandler.Login)
	account.Get("/Register", c.AccountPageHandler.RegisterForm)
	account.Post("/Register", c.AccountPageHandler.Register)
	account.Post("/Logout", c.AccountPageHandler.Logout)

	c.pages("/Weather").Get("/", c.WeatherPageHandler.Index)
}
