package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/iwvelando/marui-portal/internal/masterdata"
)

func (h *handler) registerMasterRoutes(api *mux.Router) {
	m := api.PathPrefix("/master").Subrouter()

	m.HandleFunc("/divisions", h.handleListDivisions).Methods(http.MethodGet)
	m.HandleFunc("/divisions", h.handleAddDivision).Methods(http.MethodPost)
	m.HandleFunc("/divisions/{id}", h.handleEditDivision).Methods(http.MethodPut)
	m.HandleFunc("/divisions/{id}/toggle", h.handleToggleDivision).Methods(http.MethodPost)

	m.HandleFunc("/users", h.handleListUsers).Methods(http.MethodGet)
	m.HandleFunc("/users", h.handleAddUser).Methods(http.MethodPost)
	m.HandleFunc("/users/{id}", h.handleEditUser).Methods(http.MethodPut)
	m.HandleFunc("/users/{id}/toggle", h.handleToggleUser).Methods(http.MethodPost)

	m.HandleFunc("/brands", h.handleListBrands).Methods(http.MethodGet)
	m.HandleFunc("/brands", h.handleAddBrand).Methods(http.MethodPost)
	m.HandleFunc("/brands/{id}", h.handleEditBrand).Methods(http.MethodPut)
	m.HandleFunc("/brands/{id}", h.handleDeleteBrand).Methods(http.MethodDelete)
	m.HandleFunc("/brands/{id}/toggle", h.handleToggleBrand).Methods(http.MethodPost)

	m.HandleFunc("/products", h.handleListProducts).Methods(http.MethodGet)
	m.HandleFunc("/products", h.handleAddProduct).Methods(http.MethodPost)
	m.HandleFunc("/products/{id}", h.handleEditProduct).Methods(http.MethodPut)
	m.HandleFunc("/products/{id}", h.handleDeleteProduct).Methods(http.MethodDelete)
	m.HandleFunc("/products/{id}/toggle", h.handleToggleProduct).Methods(http.MethodPost)
}

func query(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}

// respond writes v with status, or the mapped error when err is set.
func (h *handler) respond(w http.ResponseWriter, r *http.Request, status int, v interface{}, err error, op string) {
	if err != nil {
		h.fail(w, r, err, op)
		return
	}
	h.writeJSON(w, status, v)
}

func (h *handler) handleListDivisions(w http.ResponseWriter, r *http.Request) {
	list, err := h.registry.Divisions(roleOf(r), query(r))
	h.respond(w, r, http.StatusOK, list, err, "server.handleListDivisions")
}

func (h *handler) handleAddDivision(w http.ResponseWriter, r *http.Request) {
	var d masterdata.Division
	if !h.decode(w, r, &d, "server.handleAddDivision") {
		return
	}
	stored, err := h.registry.AddDivision(roleOf(r), d)
	h.respond(w, r, http.StatusCreated, stored, err, "server.handleAddDivision")
}

func (h *handler) handleEditDivision(w http.ResponseWriter, r *http.Request) {
	var d masterdata.Division
	if !h.decode(w, r, &d, "server.handleEditDivision") {
		return
	}
	stored, err := h.registry.EditDivision(roleOf(r), mux.Vars(r)["id"], d)
	h.respond(w, r, http.StatusOK, stored, err, "server.handleEditDivision")
}

func (h *handler) handleToggleDivision(w http.ResponseWriter, r *http.Request) {
	stored, err := h.registry.ToggleDivision(roleOf(r), mux.Vars(r)["id"])
	h.respond(w, r, http.StatusOK, stored, err, "server.handleToggleDivision")
}

func (h *handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.registry.Users(roleOf(r), query(r))
	h.respond(w, r, http.StatusOK, list, err, "server.handleListUsers")
}

func (h *handler) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var u masterdata.User
	if !h.decode(w, r, &u, "server.handleAddUser") {
		return
	}
	stored, err := h.registry.AddUser(roleOf(r), u)
	h.respond(w, r, http.StatusCreated, stored, err, "server.handleAddUser")
}

func (h *handler) handleEditUser(w http.ResponseWriter, r *http.Request) {
	var u masterdata.User
	if !h.decode(w, r, &u, "server.handleEditUser") {
		return
	}
	stored, err := h.registry.EditUser(roleOf(r), mux.Vars(r)["id"], u)
	h.respond(w, r, http.StatusOK, stored, err, "server.handleEditUser")
}

func (h *handler) handleToggleUser(w http.ResponseWriter, r *http.Request) {
	stored, err := h.registry.ToggleUser(roleOf(r), mux.Vars(r)["id"])
	h.respond(w, r, http.StatusOK, stored, err, "server.handleToggleUser")
}

func (h *handler) handleListBrands(w http.ResponseWriter, r *http.Request) {
	list, err := h.registry.Brands(roleOf(r), query(r))
	h.respond(w, r, http.StatusOK, list, err, "server.handleListBrands")
}

func (h *handler) handleAddBrand(w http.ResponseWriter, r *http.Request) {
	var b masterdata.Brand
	if !h.decode(w, r, &b, "server.handleAddBrand") {
		return
	}
	stored, err := h.registry.AddBrand(roleOf(r), b)
	h.respond(w, r, http.StatusCreated, stored, err, "server.handleAddBrand")
}

func (h *handler) handleEditBrand(w http.ResponseWriter, r *http.Request) {
	var b masterdata.Brand
	if !h.decode(w, r, &b, "server.handleEditBrand") {
		return
	}
	stored, err := h.registry.EditBrand(roleOf(r), mux.Vars(r)["id"], b)
	h.respond(w, r, http.StatusOK, stored, err, "server.handleEditBrand")
}

func (h *handler) handleToggleBrand(w http.ResponseWriter, r *http.Request) {
	stored, err := h.registry.ToggleBrand(roleOf(r), mux.Vars(r)["id"])
	h.respond(w, r, http.StatusOK, stored, err, "server.handleToggleBrand")
}

func (h *handler) handleDeleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.DeleteBrand(roleOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "server.handleDeleteBrand")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := masterdata.ProductFilter{
		Search:    query(r),
		BrandCode: strings.TrimSpace(r.URL.Query().Get("brand")),
	}
	list, err := h.registry.Products(roleOf(r), filter)
	h.respond(w, r, http.StatusOK, list, err, "server.handleListProducts")
}

func (h *handler) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var p masterdata.Product
	if !h.decode(w, r, &p, "server.handleAddProduct") {
		return
	}
	stored, err := h.registry.AddProduct(roleOf(r), p)
	h.respond(w, r, http.StatusCreated, stored, err, "server.handleAddProduct")
}

func (h *handler) handleEditProduct(w http.ResponseWriter, r *http.Request) {
	var p masterdata.Product
	if !h.decode(w, r, &p, "server.handleEditProduct") {
		return
	}
	stored, err := h.registry.EditProduct(roleOf(r), mux.Vars(r)["id"], p)
	h.respond(w, r, http.StatusOK, stored, err, "server.handleEditProduct")
}

func (h *handler) handleToggleProduct(w http.ResponseWriter, r *http.Request) {
	stored, err := h.registry.ToggleProduct(roleOf(r), mux.Vars(r)["id"])
	h.respond(w, r, http.StatusOK, stored, err, "server.handleToggleProduct")
}

func (h *handler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.DeleteProduct(roleOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "server.handleDeleteProduct")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
