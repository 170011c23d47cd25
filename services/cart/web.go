package cart

import (
	"context"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopclient/lib/mycontext"
	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/myevents"
	"github.com/MarcGrol/shopclient/lib/myhttp"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/lib/mytime"
	"github.com/MarcGrol/shopclient/lib/myuuid"
	"github.com/MarcGrol/shopclient/model"
)

type webService struct {
	logger      mylog.Logger
	service     *service
	formDecoder *formcodec.Decoder
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(store mystore.Store[CartRecord], pub myevents.Publisher, nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("cart")

	return &webService{
		logger:      logger,
		service:     newService(store, pub, nower, uuider, logger),
		formDecoder: formcodec.NewDecoder(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/cart", s.createCart()).Methods("POST")
	router.HandleFunc("/api/cart/{cartUID}", s.getCart()).Methods("GET")
	router.HandleFunc("/api/cart/{cartUID}", s.clearCart()).Methods("DELETE")
	router.HandleFunc("/api/cart/{cartUID}/line", s.addLineItem()).Methods("POST")
	router.HandleFunc("/api/cart/{cartUID}/line/{lineUID}", s.removeLineItem()).Methods("DELETE")

	err := s.service.publisher.CreateTopic(c, TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", TopicName, err)
	}

	return nil
}

type cartResponse struct {
	model.Cart
	Subtotal         decimal.Decimal
	ItemCount        int64
	RequiresShipping bool
}

func newCartResponse(cart model.Cart) cartResponse {
	return cartResponse{
		Cart:             cart,
		Subtotal:         cart.Subtotal(),
		ItemCount:        cart.ItemCount(),
		RequiresShipping: cart.RequiresShipping(),
	}
}

func (s *webService) createCart() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		cart, err := s.service.createCart(c)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusCreated, newCartResponse(cart))
	}
}

func (s *webService) getCart() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		cart, err := s.service.getCart(c, mux.Vars(r)["cartUID"])
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s *webService) addLineItem() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidArgumentError(err))
			return
		}

		form := LineItemForm{}
		err = s.formDecoder.Decode(&form, r.PostForm)
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidArgumentError(err))
			return
		}

		cart, err := s.service.addLineItem(c, mux.Vars(r)["cartUID"], form)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s *webService) removeLineItem() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		vars := mux.Vars(r)
		cart, err := s.service.removeLineItem(c, vars["cartUID"], vars["lineUID"])
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s *webService) clearCart() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		cart, err := s.service.clearCart(c, mux.Vars(r)["cartUID"])
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}
