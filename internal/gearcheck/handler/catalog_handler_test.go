package handler_test

import (
	"net/http"
	"testing"

	"github.com/Acearia/gearcheck/internal/gearcheck/testutil"
	"github.com/gin-gonic/gin"
)

func setupCatalogRoutes(env *testutil.TestEnv) *gin.Engine {
	r := env.Router
	v1 := r.Group("/api/v1")
	operators := v1.Group("/operators")
	{
		operators.GET("", env.Handlers.Catalog.ListOperators)
		operators.POST("", env.Handlers.Catalog.CreateOperator)
		operators.PUT("/:id", env.Handlers.Catalog.UpdateOperator)
		operators.DELETE("/:id", env.Handlers.Catalog.DeleteOperator)
		operators.POST("/import", env.Handlers.Catalog.BulkImportOperators)
		operators.POST("/reinitialize", env.Handlers.Catalog.ReinitializeOperators)
	}
	equipment := v1.Group("/equipment")
	{
		equipment.GET("", env.Handlers.Catalog.ListEquipment)
		equipment.POST("", env.Handlers.Catalog.CreateEquipment)
	}
	v1.GET("/leaders", env.Handlers.Leader.ListLeaders)
	return r
}

func TestListOperatorsSeedsDefaults(t *testing.T) {
	env := testutil.SetupEnv(t)
	r := setupCatalogRoutes(env)

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/operators", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	operators := resp["data"].([]interface{})
	if len(operators) != 8 {
		t.Errorf("expected 8 seeded operators, got %d", len(operators))
	}
}

func TestCreateOperatorOverHTTP(t *testing.T) {
	env := testutil.SetupEnv(t)
	r := setupCatalogRoutes(env)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/operators",
		map[string]string{"name": "novo operador", "cargo": "Operador de Ponte", "setor": "Aciaria"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	operator := resp["data"].(map[string]interface{})
	if operator["name"] != "NOVO OPERADOR" {
		t.Errorf("expected uppercased name, got %v", operator["name"])
	}

	// missing name is rejected by binding
	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/operators", map[string]string{"cargo": "Operador"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestBulkImportOverHTTP(t *testing.T) {
	env := testutil.SetupEnv(t)
	r := setupCatalogRoutes(env)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/operators/import",
		map[string]string{"text": "9001\tCarlos Souza\tOperador\tManutenção\n9002\tAna Lima\t\t"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	operators := resp["data"].([]interface{})
	if len(operators) != 2 {
		t.Fatalf("expected 2 imported operators, got %d", len(operators))
	}
	first := operators[0].(map[string]interface{})
	if first["name"] != "CARLOS SOUZA" {
		t.Errorf("unexpected first operator %v", first["name"])
	}
}

func TestDeleteMissingOperator(t *testing.T) {
	env := testutil.SetupEnv(t)
	r := setupCatalogRoutes(env)

	w := testutil.DoRequest(r, http.MethodDelete, "/api/v1/operators/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListLeadersFilterBySector(t *testing.T) {
	env := testutil.SetupEnv(t)
	r := setupCatalogRoutes(env)

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/leaders?sector=Aciaria", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	leaders := resp["data"].([]interface{})
	if len(leaders) != 1 {
		t.Fatalf("expected 1 leader for Aciaria, got %d", len(leaders))
	}
	leader := leaders[0].(map[string]interface{})
	if leader["setor"] != "Aciaria" {
		t.Errorf("unexpected leader sector %v", leader["setor"])
	}
}
