package config

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/middleware"
	"DishAndMovie/internal/testutil"
	"DishAndMovie/internal/utils"
	"DishAndMovie/internal/views"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := utils.DefaultConfig()
	cfg.JWTSecret = "test-secret"
	cfg.LogFile = ""
	cfg.StoragePublicRoot = t.TempDir()
	cfg.WeatherBaseURL = "http://127.0.0.1:0"

	app := fiber.New(fiber.Config{
		Views:             views.NewEngine(),
		PassLocalsToViews: true,
		ErrorHandler:      errorHandler,
	})
	require.NoError(t, RegisterRoutes(app, testutil.NewTestDB(t), cfg))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	return loginAs(t, app, "cook@example.com", "cook")
}

func loginAs(t *testing.T, app *fiber.App, email, userName string) string {
	t.Helper()

	resp := do(t, app, http.MethodPost, "/api/Account/Register", "", domain.RegisterRequest{
		Email: email, UserName: userName, Password: "password123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/Account/Login", "", domain.LoginRequest{
		Email: email, Password: "password123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cookieSet bool
	for _, c := range resp.Cookies() {
		if c.Name == middleware.AccessTokenCookie && c.Value != "" {
			cookieSet = true
		}
	}
	assert.True(t, cookieSet)

	var res domain.LoginResponse
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/ping", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pong", body["message"])
}

func TestOriginAPI(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/Origin/AddOrigin", "", domain.OriginRequest{Country: "Peru"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token := login(t, app)

	resp = do(t, app, http.MethodPost, "/api/Origin/AddOrigin", token, domain.OriginRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/Origin/AddOrigin", token, domain.OriginRequest{Country: "Peru"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	location := resp.Header.Get(fiber.HeaderLocation)
	assert.Equal(t, "/api/Origin/FindOrigin/1", location)

	resp = do(t, app, http.MethodPost, "/api/Origin/AddOrigin", token, domain.OriginRequest{Country: "Chile"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodPut, "/api/Origin/UpdateOrigin/1", token, domain.OriginRequest{ID: 2, Country: "Bolivia"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPut, "/api/Origin/UpdateOrigin/1", token, domain.OriginRequest{ID: 1, Country: "Bolivia"})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodPut, "/api/Origin/UpdateOrigin/9", token, domain.OriginRequest{ID: 9, Country: "Nowhere"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodGet, location, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var found domain.Origin
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &found))
	assert.Equal(t, "Bolivia", found.Country)

	resp = do(t, app, http.MethodGet, "/api/Origin/ListOrigins", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []domain.Origin
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &list))
	assert.Len(t, list, 2)

	resp = do(t, app, http.MethodGet, "/api/Origin/ListOrigins?skip=1&perpage=1", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Chile", list[0].Country)

	resp = do(t, app, http.MethodGet, "/api/Origin/FindOrigin/abc", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/api/Origin/DeleteOrigin/1", token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, location, "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, decode(t, resp).Status)
}

func TestAccountMe(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/Account/Me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/Account/Me", "bogus", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token := login(t, app)
	resp = do(t, app, http.MethodGet, "/api/Account/Me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me domain.User
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &me))
	assert.Equal(t, "cook@example.com", me.Email)

	resp = do(t, app, http.MethodPost, "/api/Account/Register", "", domain.RegisterRequest{
		Email: "COOK@example.com", UserName: "again", Password: "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// formToken loads a page and returns the form token cookie it hands out.
func formToken(t *testing.T, app *fiber.App, target, token string) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == middleware.CSRFCookie {
			require.NotEmpty(t, c.Value)
			assert.Contains(t, string(html), `name="`+middleware.CSRFField+`" value="`+c.Value+`"`)
			return c
		}
	}
	t.Fatalf("no %s cookie on %s", middleware.CSRFCookie, target)
	return nil
}

func postForm(t *testing.T, app *fiber.App, target, token string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestOriginPages(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/OriginPage/New", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token := login(t, app)
	csrfCookie := formToken(t, app, "/OriginPage/New", token)

	form := url.Values{"country": {"Vietnam"}, middleware.CSRFField: {csrfCookie.Value}}
	resp = postForm(t, app, "/OriginPage/Add", token, form, csrfCookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/OriginPage/List", resp.Header.Get(fiber.HeaderLocation))

	resp = do(t, app, http.MethodGet, "/OriginPage/List", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Vietnam")

	resp = do(t, app, http.MethodGet, "/OriginPage/Details/42", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPageFormsRequireToken(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)
	csrfCookie := formToken(t, app, "/OriginPage/New", token)

	tests := []struct {
		name    string
		target  string
		form    url.Values
		cookies []*http.Cookie
	}{
		{"no token", "/OriginPage/Add", url.Values{"country": {"Peru"}}, []*http.Cookie{csrfCookie}},
		{"no cookie", "/OriginPage/Add", url.Values{"country": {"Peru"}, middleware.CSRFField: {csrfCookie.Value}}, nil},
		{"wrong token", "/OriginPage/Add", url.Values{"country": {"Peru"}, middleware.CSRFField: {"forged"}}, []*http.Cookie{csrfCookie}},
		{"delete", "/OriginPage/Delete/1", url.Values{}, []*http.Cookie{csrfCookie}},
		{"logout", "/Account/Logout", url.Values{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postForm(t, app, tt.target, token, tt.form, tt.cookies...)
			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		})
	}

	resp := do(t, app, http.MethodGet, "/api/Origin/ListOrigins", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []domain.Origin
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &list))
	assert.Empty(t, list)

	resp = postForm(t, app, "/Account/Login", "", url.Values{"email": {"cook@example.com"}, "password": {"password123"}})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	loginCookie := formToken(t, app, "/Account/Login", "")
	resp = postForm(t, app, "/Account/Login", "", url.Values{
		"email": {"cook@example.com"}, "password": {"password123"}, middleware.CSRFField: {loginCookie.Value},
	}, loginCookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func createdID(t *testing.T, resp *http.Response) uint {
	t.Helper()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var res struct {
		CreatedID uint `json:"created_id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &res))
	require.NotZero(t, res.CreatedID)
	return res.CreatedID
}

func TestMovieAndReviewAPI(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	originID := createdID(t, do(t, app, http.MethodPost, "/api/Origin/AddOrigin", token, domain.OriginRequest{Country: "Japan"}))
	genreID := createdID(t, do(t, app, http.MethodPost, "/api/Genre/AddGenre", token, domain.GenreRequest{Name: "Anime"}))

	resp := do(t, app, http.MethodPost, "/api/Movies/AddMovie", token, domain.MovieRequest{
		Title: "Akira", ReleaseDate: "1988-07-16", OriginID: originID,
	})
	movieID := createdID(t, resp)

	resp = do(t, app, http.MethodPut, fmt.Sprintf("/api/Movies/UpdateMovie/%d", movieID), token, domain.MovieRequest{
		ID: movieID, Title: "Akira", ReleaseDate: "1988-07-16", OriginID: originID, GenreIDs: []uint{genreID},
	})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, fmt.Sprintf("/api/Movies/FindMovie/%d", movieID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var m domain.Movie
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &m))
	assert.Equal(t, []uint{genreID}, m.GenreIDs)
	assert.Equal(t, "Japan", m.OriginCountry)

	reviews := fmt.Sprintf("/api/Movies/%d/reviews", movieID)
	resp = do(t, app, http.MethodPost, reviews, "", domain.ReviewRequest{Rating: 5})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, http.MethodPost, reviews, token, domain.ReviewRequest{Rating: 9})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	reviewID := createdID(t, do(t, app, http.MethodPost, reviews, token, domain.ReviewRequest{Rating: 5, ReviewText: "Neo-Tokyo"}))

	resp = do(t, app, http.MethodPut, fmt.Sprintf("/api/Movies/%d/reviews/%d", movieID+1, reviewID), token, domain.ReviewRequest{Rating: 3})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPut, fmt.Sprintf("%s/%d", reviews, reviewID), token, domain.ReviewRequest{Rating: 4})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, reviews, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []domain.Review
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Rating)
	assert.Equal(t, "cook", list[0].UserName)

	resp = do(t, app, http.MethodDelete, fmt.Sprintf("/api/Movies/DeleteMovie/%d", movieID), token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, reviews, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &list))
	assert.Empty(t, list)
}

func TestAddAndFindKeepEveryField(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	originID := createdID(t, do(t, app, http.MethodPost, "/api/Origin/AddOrigin", token, domain.OriginRequest{Country: "Italy"}))

	t.Run("movie", func(t *testing.T) {
		id := createdID(t, do(t, app, http.MethodPost, "/api/Movies/AddMovie", token, map[string]any{
			"title":        "La Dolce Vita",
			"description":  "A week in Rome with a gossip journalist.",
			"release_date": "1960-02-05",
			"poster_url":   "https://img.example.com/dolce.jpg",
			"director":     "Federico Fellini",
			"origin_id":    originID,
		}))

		resp := do(t, app, http.MethodGet, fmt.Sprintf("/api/Movies/FindMovie/%d", id), "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var m domain.Movie
		require.NoError(t, json.Unmarshal(decode(t, resp).Data, &m))
		assert.Equal(t, id, m.ID)
		assert.Equal(t, "La Dolce Vita", m.Title)
		assert.Equal(t, "A week in Rome with a gossip journalist.", m.Description)
		assert.Equal(t, "1960-02-05", m.ReleaseDate)
		assert.Equal(t, "https://img.example.com/dolce.jpg", m.PosterURL)
		assert.Equal(t, "Federico Fellini", m.Director)
		assert.Equal(t, originID, m.OriginID)
		assert.Equal(t, "Italy", m.OriginCountry)
	})

	t.Run("recipe", func(t *testing.T) {
		id := createdID(t, do(t, app, http.MethodPost, "/api/Recipe/AddRecipe", token, domain.RecipeRequest{
			Name: "Carbonara", OriginID: originID,
		}))

		resp := do(t, app, http.MethodGet, fmt.Sprintf("/api/Recipe/FindRecipe/%d", id), "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var r domain.Recipe
		require.NoError(t, json.Unmarshal(decode(t, resp).Data, &r))
		assert.Equal(t, id, r.ID)
		assert.Equal(t, "Carbonara", r.Name)
		assert.Equal(t, originID, r.OriginID)
		assert.Equal(t, "Italy", r.OriginCountry)
	})

	t.Run("meal plan", func(t *testing.T) {
		id := createdID(t, do(t, app, http.MethodPost, "/api/MealPlan/AddMealPlan", token, domain.MealPlanRequest{
			Name: "Sunday lunch", Date: "2024-06-09",
		}))

		resp := do(t, app, http.MethodGet, fmt.Sprintf("/api/MealPlan/FindMealPlan/%d", id), "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var plan domain.MealPlan
		require.NoError(t, json.Unmarshal(decode(t, resp).Data, &plan))
		assert.Equal(t, domain.MealPlan{ID: id, Name: "Sunday lunch", Date: "2024-06-09"}, plan)
	})
}

func TestReviewAPIOnlyAuthorMayChange(t *testing.T) {
	app := newTestApp(t)
	author := login(t, app)
	stranger := loginAs(t, app, "critic@example.com", "critic")

	originID := createdID(t, do(t, app, http.MethodPost, "/api/Origin/AddOrigin", author, domain.OriginRequest{Country: "France"}))
	movieID := createdID(t, do(t, app, http.MethodPost, "/api/Movies/AddMovie", author, domain.MovieRequest{
		Title: "Amelie", ReleaseDate: "2001-04-25", OriginID: originID,
	}))
	reviews := fmt.Sprintf("/api/Movies/%d/reviews", movieID)
	reviewID := createdID(t, do(t, app, http.MethodPost, reviews, author, domain.ReviewRequest{Rating: 5}))
	review := fmt.Sprintf("%s/%d", reviews, reviewID)

	resp := do(t, app, http.MethodPut, review, stranger, domain.ReviewRequest{Rating: 1})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, decode(t, resp).Message, domain.MessageReviewNotAuthor)

	resp = do(t, app, http.MethodDelete, review, stranger, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = do(t, app, http.MethodGet, reviews, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []domain.Review
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Rating)

	resp = do(t, app, http.MethodDelete, review, author, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
