package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/myconfig"
	"github.com/MarcGrol/shopclient/lib/myevents"
	"github.com/MarcGrol/shopclient/lib/mygraphql"
	"github.com/MarcGrol/shopclient/lib/mymetrics"
	"github.com/MarcGrol/shopclient/lib/mypubsub"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/lib/mytime"
	"github.com/MarcGrol/shopclient/lib/myuuid"
	"github.com/MarcGrol/shopclient/services/cart"
	"github.com/MarcGrol/shopclient/services/interactor"
	"github.com/MarcGrol/shopclient/services/storefront"
	"github.com/MarcGrol/shopclient/services/storefrontapi"
	"github.com/MarcGrol/shopclient/services/warmup"
)

type application struct {
	config         myconfig.Config
	metricsHandler http.Handler
	repository     storefront.Repository
}

func newRootCommand() *cobra.Command {
	var configPath string
	app := &application{}

	root := &cobra.Command{
		Use:          "shopclient",
		Short:        "Storefront client for a Shopify shop",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := myconfig.Load(configPath)
			if err != nil {
				return err
			}
			err = cfg.Validate()
			if err != nil {
				return err
			}

			registry := mymetrics.NewRegistry()
			client := mygraphql.NewClient(cfg.Storefront.GraphQLEndpoint(), cfg.Storefront.AccessToken,
				cfg.RequestTimeout, myuuid.RealUUIDer{}, mymetrics.NewRemoteCallMetrics(registry))

			app.config = cfg
			app.metricsHandler = mymetrics.Handler(registry)
			app.repository = storefront.NewRepository(client)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "yaml config file (environment variables take precedence)")

	root.AddCommand(
		serveCmd(app),
		checkoutCmd(app),
		productCmd(app),
		collectionCmd(app),
		shopCmd(app),
	)
	return root
}

func serveCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront and cart api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context()

			cartStore, cleanup, err := mystore.New[cart.CartRecord](c, app.config.GoogleCloudProject)
			if err != nil {
				return fmt.Errorf("error creating cart store: %s", err)
			}
			defer cleanup()

			pubsub, pubsubCleanup, err := mypubsub.New(c, app.config.GoogleCloudProject)
			if err != nil {
				return fmt.Errorf("error creating pubsub: %s", err)
			}
			defer pubsubCleanup()
			publisher := myevents.NewPublisher(pubsub, mytime.RealNower{})

			router := mux.NewRouter()
			storefrontapi.NewService(app.repository).RegisterEndpoints(c, router)
			warmup.NewService(app.repository).RegisterEndpoints(c, router)
			err = cart.NewService(cartStore, publisher, mytime.RealNower{}, myuuid.RealUUIDer{}).RegisterEndpoints(c, router)
			if err != nil {
				return err
			}
			router.Handle("/metrics", app.metricsHandler).Methods("GET")

			return startWebServerBlocking(c, app.config.Port, router)
		},
	}
}

func startWebServerBlocking(c context.Context, port string, router *mux.Router) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	go func() {
		<-c.Done()
		server.Shutdown(context.Background())
	}()

	log.Printf("Starting webserver on port %s (try http://localhost:%s/api/shop)", port, port)
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error starting webserver on port %s: %s", port, err)
	}
	return nil
}

func checkoutCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <checkout-id>",
		Short: "Print the checkout with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			single, err := interactor.NewCheckoutByIDInteractor(app.repository).Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.Context(), cmd.OutOrStdout(), single)
		},
	}
}

func productCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "product <product-id>",
		Short: "Print the product with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			single, err := interactor.NewProductByIDInteractor(app.repository).Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.Context(), cmd.OutOrStdout(), single)
		},
	}
}

func collectionCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "collection <collection-id>",
		Short: "Print the collection with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			single, err := interactor.NewCollectionByIDInteractor(app.repository).Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.Context(), cmd.OutOrStdout(), single)
		},
	}
}

func shopCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Print the shop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			single := interactor.NewShopInteractor(app.repository).Execute(cmd.Context())
			return printResult(cmd.Context(), cmd.OutOrStdout(), single)
		},
	}
}

func printResult[T any](c context.Context, out io.Writer, single *myasync.Single[T]) error {
	result, err := single.Await(c)
	if err != nil {
		single.Cancel()
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "\t")
	return encoder.Encode(result)
}
