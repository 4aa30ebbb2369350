package cmd

import (
	"log/slog"
	"net/http"

	httpin "trackview/internal/adapters/in/http"
	"trackview/internal/adapters/out/analyticsservice"
	"trackview/internal/adapters/out/authservice"
	"trackview/internal/adapters/out/nominatim"
	"trackview/internal/adapters/out/orderservice"
	"trackview/internal/adapters/out/trackingservice"
	"trackview/internal/core/application/reconciler"
	"trackview/internal/core/application/usecases/commands"
	"trackview/internal/core/application/usecases/queries"
	"trackview/internal/core/ports"
	"trackview/internal/jobs"
)

type CompositionRoot struct {
	logger *slog.Logger

	authClient      *authservice.Client
	orderClient     *orderservice.Client
	analyticsClient *analyticsservice.Client

	reconciler *reconciler.Reconciler
	closeFeed  func()
}

func NewCompositionRoot(config Config, logger *slog.Logger) *CompositionRoot {
	httpClient := &http.Client{Timeout: config.HTTPClientTimeout}

	c := &CompositionRoot{
		logger:          logger,
		authClient:      authservice.NewClient(config.AuthURL, httpClient),
		orderClient:     orderservice.NewClient(config.OrdersURL, httpClient),
		analyticsClient: analyticsservice.NewClient(config.AnalyticsURL, httpClient),
	}

	geocoder := nominatim.NewGeocoder(config.GeocoderURL, config.GeocoderUserAgent, config.GeocoderRatePerSec, httpClient)

	var feed ports.PositionFeed
	switch config.TrackingStrategy {
	case TrackingStrategyStream:
		feed = trackingservice.NewStreamFeed(config.TrackingStreamURL, logger)
		c.closeFeed = func() {}
	default:
		manager := jobs.NewJobManager(logger)
		polling := trackingservice.NewPollingFeed(
			trackingservice.NewClient(config.TrackingURL, httpClient),
			manager,
			config.TrackingPollInterval,
			logger,
		)
		feed = polling
		c.closeFeed = polling.Close
	}

	c.reconciler = reconciler.New(c.orderClient, geocoder, feed, logger)

	logger.Info("Composition root ready", "tracking_strategy", config.TrackingStrategy)
	return c
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.authClient)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderClient, c.reconciler)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderClient, c.reconciler)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.orderClient)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.orderClient)
}

func (c *CompositionRoot) CreateSelectOrderCommandHandler() commands.SelectOrderCommandHandler {
	return commands.NewSelectOrderCommandHandler(c.reconciler)
}

func (c *CompositionRoot) CreateClearSelectionCommandHandler() commands.ClearSelectionCommandHandler {
	return commands.NewClearSelectionCommandHandler(c.reconciler)
}

func (c *CompositionRoot) CreateGetMapViewQueryHandler() queries.GetMapViewQueryHandler {
	return queries.NewGetMapViewQueryHandler(c.reconciler)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orderClient)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.orderClient)
}

func (c *CompositionRoot) CreateGetCourierStatsQueryHandler() queries.GetCourierStatsQueryHandler {
	return queries.NewGetCourierStatsQueryHandler(c.analyticsClient)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateLoginCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateCreateCourierCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateSelectOrderCommandHandler(),
		c.CreateClearSelectionCommandHandler(),
		c.CreateGetMapViewQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetCouriersQueryHandler(),
		c.CreateGetCourierStatsQueryHandler(),
	)
}

// Close unmounts the tracking view, which releases its subscription, then
// stops whatever the feed still runs.
func (c *CompositionRoot) Close() {
	c.reconciler.Close()
	c.closeFeed()
	c.logger.Info("Composition root closed")
}
