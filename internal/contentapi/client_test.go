package contentapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thrivecms/internal/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, "test-token", 2*time.Second), srv
}

func TestList_BareArray(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/services", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":"1","title":"Consulting"}]`))
	})
	defer srv.Close()

	res := NewResource[models.Service](client, "services")
	items, err := res.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Consulting", items[0].Title)
}

func TestList_Envelope(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"1","title":"Consulting"},{"id":"2","title":"Audit"}]}`))
	})
	defer srv.Close()

	res := NewResource[models.Service](client, "services")
	items, err := res.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestList_Malformed(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})
	defer srv.Close()

	res := NewResource[models.Service](client, "services")
	_, err := res.List(context.Background())

	assert.Error(t, err)
}

func TestCreate_EnvelopedItem(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"srv-9","title":"Consulting"}}`))
	})
	defer srv.Close()

	res := NewResource[models.Service](client, "services")
	created, err := res.Create(context.Background(), models.Service{Title: "Consulting"})

	require.NoError(t, err)
	assert.Equal(t, "srv-9", created.ID)
}

func TestCreate_BareItem(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"srv-9","title":"Consulting"}`))
	})
	defer srv.Close()

	res := NewResource[models.Service](client, "services")
	created, err := res.Create(context.Background(), models.Service{Title: "Consulting"})

	require.NoError(t, err)
	assert.Equal(t, "srv-9", created.ID)
}

func TestRateLimit_MappedToSentinel(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	res := NewResource[models.Service](client, "services")
	_, err := res.List(context.Background())

	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestUnauthorized_MappedToSentinel(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer srv.Close()

	res := NewResource[models.Service](client, "services")
	_, err := res.List(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestValidationError_FieldListForm(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"The given data was invalid.","errors":{"title":["Поле title обязательно"]}}`))
	})
	defer srv.Close()

	res := NewResource[models.Service](client, "services")
	_, err := res.Create(context.Background(), models.Service{})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Поле title обязательно", verr.Fields["title"])
}

func TestValidationError_FieldStringForm(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"email":"невалидный email"}}`))
	})
	defer srv.Close()

	res := NewResource[models.ContactSubmission](client, "contact-submissions")
	_, err := res.Create(context.Background(), models.ContactSubmission{})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "невалидный email", verr.Fields["email"])
}

func TestServerError_MappedToAPIError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})
	defer srv.Close()

	res := NewResource[models.Service](client, "services")
	_, err := res.List(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "boom")
}

func TestTimeout_TreatedAsPlainFailure(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	defer srv.Close()
	client.HTTPClient.Timeout = 50 * time.Millisecond

	res := NewResource[models.Service](client, "services")
	_, err := res.List(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestUpdateMultipart_MethodOverride(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "PUT", r.FormValue("_method"))
		assert.Equal(t, "THRIVE", r.FormValue("title"))

		file, header, err := r.FormFile("logo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)

		w.Write([]byte(`{"id":"f-1","title":"THRIVE","logo":"footers/logo.png"}`))
	})
	defer srv.Close()

	res := NewResource[models.FooterData](client, "footers")
	updated, err := res.UpdateMultipart(context.Background(), "f-1",
		map[string]string{"title": "THRIVE"},
		[]Upload{{Field: "logo", Filename: "logo.png", Data: []byte("png-bytes")}},
	)

	require.NoError(t, err)
	assert.Equal(t, "footers/logo.png", updated.Logo)
}

func TestActivate(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/footers/f-2/activate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"data":{"id":"f-2","is_active":true}}`))
	})
	defer srv.Close()

	res := NewResource[models.FooterData](client, "footers")
	activated, err := res.Activate(context.Background(), "f-2")

	require.NoError(t, err)
	assert.True(t, activated.IsActive)
}

func TestAbsoluteImageURL(t *testing.T) {
	base := "http://127.0.0.1:8000/storage"

	assert.Equal(t, "", AbsoluteImageURL(base, ""))
	assert.Equal(t, "https://cdn.example.com/a.png", AbsoluteImageURL(base, "https://cdn.example.com/a.png"))
	assert.Equal(t, "http://127.0.0.1:8000/storage/team/a.png", AbsoluteImageURL(base, "team/a.png"))
	assert.Equal(t, "http://127.0.0.1:8000/storage/team/a.png", AbsoluteImageURL(base+"/", "/team/a.png"))
}
