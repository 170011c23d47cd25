package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopclient/lib/mycontext"
	"github.com/MarcGrol/shopclient/lib/myhttp"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/services/interactor"
	"github.com/MarcGrol/shopclient/services/storefront"
)

type webService struct {
	logger mylog.Logger
	shop   *interactor.ShopInteractor
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(repository storefront.Repository) *webService {
	return &webService{
		logger: mylog.New("warmup"),
		shop:   interactor.NewShopInteractor(repository),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

// warmupPage fetches the shop once, which opens the connection to the storefront and
// proves the access token is accepted before real traffic arrives.
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		single := s.shop.Execute(c)
		shop, err := single.Await(c)
		if err != nil {
			single.Cancel()
			responseWriter.WriteError(c, w, err)
			return
		}

		s.logger.Log(c, "", mylog.SeverityInfo, "Warmed up for shop %s", shop.Name)
		w.WriteHeader(http.StatusNoContent)
	}
}
