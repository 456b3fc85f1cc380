package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every route is mounted.
func TestRegisterRoutes(t *testing.T) {
	f := newFixture(t)

	// the list route reaches the repository even with an empty request
	f.repo.EXPECT().FindByApp(gomock.Any(), gomock.Nil()).Return(nil, nil).AnyTimes()

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/user/enrollment"},
		{http.MethodGet, "/api/v1/user/"},
		{http.MethodPut, "/api/v1/user/verification"},
		{http.MethodPost, "/api/v1/user/password"},
		{http.MethodPut, "/api/v1/user/password"},
		{http.MethodPost, "/api/v1/user/login"},
		{http.MethodGet, "/api/v1/user/some-id"},
		{http.MethodPatch, "/api/v1/user/some-id"},
		{http.MethodDelete, "/api/v1/user/some-id"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 405 means it doesn't.
			// The handlers themselves will return other codes (400, 404 for
			// unknown IDs), which is fine for this existence check.
			assert.NotEqual(t, http.StatusMethodNotAllowed, resp.StatusCode)
		})
	}
}
