package monitor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"crnensemble/engine"
)

func TestServerHandlers(t *testing.T) {
	Convey("serveHealthz", t, func() {
		Convey("reports 200 OK", func() {
			s := NewServer(":0", make(chan engine.Result))
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			s.serveHealthz(rec, req)
			So(rec.Code, ShouldEqual, http.StatusOK)
		})
	})

	Convey("serveIndex", t, func() {
		Convey("serves the HTML page", func() {
			s := NewServer(":0", make(chan engine.Result))
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			s.serveIndex(rec, req)
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "crnensemble monitor")
		})
	})
}
