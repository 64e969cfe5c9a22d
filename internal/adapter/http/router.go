package http

import "net/http"

// NewRouter builds the API route table. Order routes accept both the bare
// and trailing-slash forms clients use. Customer routes sit behind the
// x-access-token gate; catalog maintenance sits behind the admin gate.
func NewRouter(orders *OrderHandler, menus *MenuHandler, auth *AuthHandler, mw *AuthMiddleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("POST /api/v2/orders", mw.TokenRequired(http.HandlerFunc(orders.Create)))
	mux.Handle("POST /api/v2/orders/{$}", mw.TokenRequired(http.HandlerFunc(orders.Create)))
	mux.Handle("GET /api/v2/orders", mw.TokenRequired(http.HandlerFunc(orders.List)))
	mux.Handle("PUT /api/v2/orders/{id}", mw.TokenRequired(http.HandlerFunc(orders.Update)))
	mux.Handle("DELETE /api/v2/orders/{id}", mw.TokenRequired(http.HandlerFunc(orders.Delete)))

	mux.Handle("POST /api/v2/menu", mw.AdminOnly(http.HandlerFunc(menus.CreateMenu)))
	mux.Handle("POST /api/v2/menu/{$}", mw.AdminOnly(http.HandlerFunc(menus.CreateMenu)))
	mux.HandleFunc("GET /api/v2/menu", menus.GetMenu)
	mux.HandleFunc("GET /api/v2/menu/{$}", menus.GetMenu)

	mux.Handle("POST /api/v2/meals", mw.AdminOnly(http.HandlerFunc(menus.CreateMeal)))
	mux.Handle("POST /api/v2/meals/{$}", mw.AdminOnly(http.HandlerFunc(menus.CreateMeal)))
	mux.Handle("GET /api/v2/meals", mw.AdminOnly(http.HandlerFunc(menus.ListMeals)))
	mux.Handle("GET /api/v2/meals/{$}", mw.AdminOnly(http.HandlerFunc(menus.ListMeals)))

	mux.HandleFunc("POST /api/v2/auth/signup", auth.Signup)
	mux.HandleFunc("POST /api/v2/auth/login", auth.Login)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
