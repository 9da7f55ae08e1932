package restapi_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloro/deliverydesk/internal/adapters/outbound/restapi"
	"github.com/veloro/deliverydesk/internal/domain"
	"github.com/veloro/deliverydesk/internal/ports"
)

// staticTokens is a TokenSource fixed at construction.
type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) { return s.token, s.token != "" }

func newClient(t *testing.T, baseURL, token string) *restapi.Client {
	t.Helper()
	client, err := restapi.NewClient(baseURL, 5*time.Second, staticTokens{token: token}, slog.Default())
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	_, err := restapi.NewClient("", time.Second, staticTokens{}, slog.Default())
	assert.Error(t, err)

	_, err = restapi.NewClient("http://api", 0, staticTokens{}, slog.Default())
	assert.Error(t, err)

	_, err = restapi.NewClient("http://api", time.Second, nil, slog.Default())
	assert.Error(t, err)
}

func TestClient_BearerHeader(t *testing.T) {
	t.Parallel()

	t.Run("attached when a token is present", func(t *testing.T) {
		t.Parallel()
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(domain.Order{ID: "ord-1"})
		}))
		defer srv.Close()

		orders := restapi.NewOrders(newClient(t, srv.URL, "tok-123"))
		_, err := orders.Get(context.Background(), "ord-1")

		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", got)
	})

	t.Run("omitted when no token is present", func(t *testing.T) {
		t.Parallel()
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(domain.Order{ID: "ord-1"})
		}))
		defer srv.Close()

		orders := restapi.NewOrders(newClient(t, srv.URL, ""))
		_, err := orders.Get(context.Background(), "ord-1")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestClient_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "401 maps to unauthorized", status: http.StatusUnauthorized, wantErr: ports.ErrUnauthorized},
		{name: "404 maps to not found", status: http.StatusNotFound, wantErr: ports.ErrNotFound},
		{name: "500 maps to remote unavailable", status: http.StatusInternalServerError, wantErr: ports.ErrRemoteUnavailable},
		{name: "503 maps to remote unavailable", status: http.StatusServiceUnavailable, wantErr: ports.ErrRemoteUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", tc.status)
			}))
			defer srv.Close()

			orders := restapi.NewOrders(newClient(t, srv.URL, "tok"))
			_, err := orders.Get(context.Background(), "ord-1")

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClient_ClientErrorCarriesStatusAndBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quantidade inválida"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	orders := restapi.NewOrders(newClient(t, srv.URL, "tok"))
	_, err := orders.Get(context.Background(), "ord-1")

	var statusErr *restapi.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Status)
	assert.Contains(t, statusErr.Body, "quantidade inválida")
	// A 4xx is the caller's fault, not an outage.
	assert.NotErrorIs(t, err, ports.ErrRemoteUnavailable)
}

func TestClient_NetworkFailureIsRemoteUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	orders := restapi.NewOrders(newClient(t, srv.URL, "tok"))
	_, err := orders.Get(context.Background(), "ord-1")

	assert.ErrorIs(t, err, ports.ErrRemoteUnavailable)
}

func TestOrders_ListQueryAndPath(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		json.NewEncoder(w).Encode(domain.Page[domain.Order]{
			Content: []domain.Order{{ID: "ord-1"}}, TotalElements: 1, TotalPages: 1, Last: true,
		})
	}))
	defer srv.Close()

	orders := restapi.NewOrders(newClient(t, srv.URL, "tok"))
	page, err := orders.List(context.Background(), 2, 15)

	require.NoError(t, err)
	assert.Equal(t, "/orders", gotPath)
	assert.Equal(t, "page=2&size=15", gotQuery)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "ord-1", page.Content[0].ID)
}

func TestDeliveries_Wire(t *testing.T) {
	t.Parallel()

	t.Run("create binds the order in the path", func(t *testing.T) {
		t.Parallel()
		var gotMethod, gotPath string
		var gotBody domain.CreateDeliveryRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(domain.Delivery{ID: "del-1", OrderID: "ord-1"})
		}))
		defer srv.Close()

		deliveries := restapi.NewDeliveries(newClient(t, srv.URL, "tok"))
		_, err := deliveries.Create(context.Background(), "ord-1", domain.CreateDeliveryRequest{
			Street: "Rua Augusta, 100", City: "São Paulo", State: "SP", ZipCode: "01304000",
		})

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/deliveries/ord-1", gotPath)
		assert.Equal(t, "Rua Augusta, 100", gotBody.Street)
	})

	t.Run("status update patches the status subresource", func(t *testing.T) {
		t.Parallel()
		var gotMethod, gotPath string
		var gotBody map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(domain.Delivery{ID: "del-1"})
		}))
		defer srv.Close()

		deliveries := restapi.NewDeliveries(newClient(t, srv.URL, "tok"))
		_, err := deliveries.UpdateStatus(context.Background(), "del-1", domain.DeliveryInTransit)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPatch, gotMethod)
		assert.Equal(t, "/deliveries/del-1/status", gotPath)
		assert.Equal(t, "IN_TRANSIT", gotBody["status"])
	})

	t.Run("get forwards the tracking flag", func(t *testing.T) {
		t.Parallel()
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			json.NewEncoder(w).Encode(domain.Delivery{ID: "del-1"})
		}))
		defer srv.Close()

		deliveries := restapi.NewDeliveries(newClient(t, srv.URL, "tok"))
		_, err := deliveries.Get(context.Background(), "del-1", true)

		require.NoError(t, err)
		assert.Equal(t, "includeTracking=true", gotQuery)
	})
}

func TestAddresses_ByZipMapsPayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/addresses/01001000", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"cep":          "01001-000",
			"street":       "Praça da Sé",
			"neighborhood": "Sé",
			"city":         "São Paulo",
			"state":        "SP",
		})
	}))
	defer srv.Close()

	lookup := restapi.NewAddresses(newClient(t, srv.URL, "tok"))
	addr, err := lookup.ByZip(context.Background(), "01001000")

	require.NoError(t, err)
	assert.Equal(t, "Praça da Sé", addr.Street)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "01001-000", addr.ZipCode)
	assert.Empty(t, addr.Number, "the lookup never knows the street number")
}

func TestAuth_LoginSuccessForwardsCookie(t *testing.T) {
	t.Parallel()

	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login-success", r.URL.Path)
		gotCookie = r.Header.Get("Cookie")
		json.NewEncoder(w).Encode(ports.AuthUser{Email: "jane@example.com", Token: "tok-new"})
	}))
	defer srv.Close()

	auth := restapi.NewAuth(newClient(t, srv.URL, ""), "http://sso/authorize")
	user, err := auth.LoginSuccess(context.Background(), "JSESSIONID=abc123")

	require.NoError(t, err)
	assert.Equal(t, "JSESSIONID=abc123", gotCookie)
	assert.Equal(t, "tok-new", user.Token)
	assert.Equal(t, "http://sso/authorize", auth.OAuthEntryURL())
}
