package venues

import (
	"context"
	"net/http"
	"time"

	"holidaze/internal/activity"
	"holidaze/internal/availability"
	"holidaze/internal/session"
	"holidaze/internal/shared/constants"
	"holidaze/internal/shared/errs"
	"holidaze/pkg/cache"
	"holidaze/pkg/logger"
	"holidaze/pkg/noroff"
)

var (
	ErrVenueNotFound = errs.New(http.StatusNotFound, "venue not found")
	ErrNotOwner      = errs.New(http.StatusForbidden, "only the venue's owner can change it")
)

type Service interface {
	LoadCatalog(ctx context.Context, visitorID string, req LoadRequest) (*Catalog, error)
	GetVenue(ctx context.Context, id string, viewer *session.UserSession) (*VenueDetail, error)
	// FetchVenue returns the venue with owner and bookings expanded
	FetchVenue(ctx context.Context, id string) (*noroff.Venue, error)
	// RefreshVenue skips the cache and stores the fresh copy, for write paths
	RefreshVenue(ctx context.Context, id string) (*noroff.Venue, error)
	GetAvailability(ctx context.Context, id string, viewer *session.UserSession, from availability.Day, months int) (*AvailabilityView, error)
	// InvalidateVenue drops cached copies after a booking change
	InvalidateVenue(ctx context.Context, id string)

	ListManagedVenues(ctx context.Context, manager *session.UserSession) ([]noroff.Venue, error)
	CreateVenue(ctx context.Context, manager *session.UserSession, req CreateVenueRequest) (*noroff.Venue, error)
	UpdateVenue(ctx context.Context, manager *session.UserSession, id string, req UpdateVenueRequest) (*noroff.Venue, error)
	DeleteVenue(ctx context.Context, manager *session.UserSession, id string) error
}

// Options carries the catalog and calendar settings
type Options struct {
	PageSize       int
	CalendarMonths int
	Location       *time.Location
}

type service struct {
	repo      Repository
	catalogs  CatalogStore
	cache     cache.Service
	publisher activity.Publisher
	opts      Options
	logger    *logger.Logger
}

func NewService(repo Repository, catalogs CatalogStore, cacheService cache.Service, publisher activity.Publisher, opts Options) Service {
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	if opts.CalendarMonths <= 0 {
		opts.CalendarMonths = 2
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if publisher == nil {
		publisher = activity.NoopPublisher{}
	}
	return &service{
		repo:      repo,
		catalogs:  catalogs,
		cache:     cacheService,
		publisher: publisher,
		opts:      opts,
		logger:    logger.GetDefault(),
	}
}

//  CATALOG

func (s *service) LoadCatalog(ctx context.Context, visitorID string, req LoadRequest) (*Catalog, error) {
	catalog, err := s.catalogs.Load(ctx, visitorID)
	if err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to load catalog, starting fresh", err, nil)
		catalog = nil
	}
	if catalog == nil {
		catalog = NewCatalog(req.Query)
	}

	// a new query starts over before anything is fetched
	if req.Reset || catalog.Query != req.Query {
		catalog.Reset(req.Query)
	}

	page := req.Page
	if page <= 0 {
		if !catalog.HasMore {
			return catalog, nil
		}
		page = catalog.NextPage
	}

	result, err := s.fetchCatalogPage(ctx, catalog.Query, page)
	if err != nil {
		return nil, err
	}

	catalog.Merge(result.Venues)
	if page >= catalog.NextPage {
		catalog.NextPage = page + 1
		catalog.HasMore = len(result.Venues) > 0 && !result.IsLastPage
	}

	if err := s.catalogs.Save(ctx, visitorID, catalog); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to save catalog", err, map[string]interface{}{
			"visitor_id": visitorID,
		})
	}

	return catalog, nil
}

func (s *service) fetchCatalogPage(ctx context.Context, query string, page int) (*Page, error) {
	var result Page

	if query == "" {
		key := constants.BuildVenueListKey(page, s.opts.PageSize)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_VENUES_LIST, func() (interface{}, error) {
			return s.repo.ListVenues(ctx, page, s.opts.PageSize)
		}, &result)
		return &result, err
	}

	key := constants.BuildVenueSearchKey(query, page, s.opts.PageSize)
	err := s.cache.GetOrSet(ctx, key, constants.TTL_VENUES_SEARCH, func() (interface{}, error) {
		return s.repo.SearchVenues(ctx, query, page, s.opts.PageSize)
	}, &result)
	return &result, err
}

//  VENUE DETAIL

func (s *service) FetchVenue(ctx context.Context, id string) (*noroff.Venue, error) {
	var venue noroff.Venue
	err := s.cache.GetOrSet(ctx, constants.BuildVenueDetailKey(id), constants.TTL_VENUE_DETAIL, func() (interface{}, error) {
		return s.repo.GetVenue(ctx, id)
	}, &venue)
	if err != nil {
		if noroff.IsNotFound(err) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (s *service) RefreshVenue(ctx context.Context, id string) (*noroff.Venue, error) {
	venue, err := s.repo.GetVenue(ctx, id)
	if err != nil {
		if noroff.IsNotFound(err) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, constants.BuildVenueDetailKey(id), venue, constants.TTL_VENUE_DETAIL); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to refresh venue cache", err, map[string]interface{}{"venue_id": id})
	}
	return venue, nil
}

func (s *service) GetVenue(ctx context.Context, id string, viewer *session.UserSession) (*VenueDetail, error) {
	venue, err := s.FetchVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	return &VenueDetail{
		Venue:   *venue,
		CanBook: viewer != nil && viewer.Name != venue.OwnerName(),
	}, nil
}

func (s *service) GetAvailability(ctx context.Context, id string, viewer *session.UserSession, from availability.Day, months int) (*AvailabilityView, error) {
	venue, err := s.FetchVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	if from.IsZero() {
		from = availability.DayOf(time.Now(), s.opts.Location)
	}
	if months <= 0 {
		months = s.opts.CalendarMonths
	}

	viewerID := ""
	if viewer != nil {
		viewerID = viewer.Name
	}

	result := availability.Calculate(availability.RangesFromBookings(venue.Bookings, s.opts.Location), viewerID)
	window := availability.NewWindow(from, months)

	return &AvailabilityView{
		VenueID:     venue.ID,
		MaxGuests:   venue.MaxGuests,
		Window:      window,
		Unavailable: result.UnavailableDays(),
		Mine:        result.MineDays(),
		Calendar:    result.Calendar(window),
	}, nil
}

func (s *service) InvalidateVenue(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, constants.BuildVenueDetailKey(id)); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate venue cache", err, map[string]interface{}{"venue_id": id})
	}
}

//  MANAGER

func (s *service) ListManagedVenues(ctx context.Context, manager *session.UserSession) ([]noroff.Venue, error) {
	var venues []noroff.Venue
	err := s.cache.GetOrSet(ctx, constants.BuildOwnerVenuesKey(manager.Name), constants.TTL_OWNER_VENUES, func() (interface{}, error) {
		return s.repo.ListOwnerVenues(ctx, manager.AccessToken, manager.Name)
	}, &venues)
	if err != nil {
		return nil, err
	}
	if venues == nil {
		venues = []noroff.Venue{}
	}
	return venues, nil
}

func (s *service) CreateVenue(ctx context.Context, manager *session.UserSession, req CreateVenueRequest) (*noroff.Venue, error) {
	form := NewVenueForm()
	req.Apply(&form)

	venue, err := s.repo.CreateVenue(ctx, manager.AccessToken, form.Payload())
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx, manager.Name)
	s.logger.LogVenueCreated(ctx, venue.ID, manager.Name)
	activity.Emit(ctx, s.publisher, activity.NewEvent(activity.EventVenueCreated, manager.Name, venue.ID).
		With("name", venue.Name))

	return venue, nil
}

func (s *service) UpdateVenue(ctx context.Context, manager *session.UserSession, id string, req UpdateVenueRequest) (*noroff.Venue, error) {
	existing, err := s.ownedVenue(ctx, manager, id)
	if err != nil {
		return nil, err
	}

	form := FormFromVenue(*existing)
	req.Apply(&form)

	venue, err := s.repo.UpdateVenue(ctx, manager.AccessToken, id, form.Payload())
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx, manager.Name)
	s.InvalidateVenue(ctx, id)
	activity.Emit(ctx, s.publisher, activity.NewEvent(activity.EventVenueUpdated, manager.Name, id))

	return venue, nil
}

func (s *service) DeleteVenue(ctx context.Context, manager *session.UserSession, id string) error {
	if _, err := s.ownedVenue(ctx, manager, id); err != nil {
		return err
	}

	if err := s.repo.DeleteVenue(ctx, manager.AccessToken, id); err != nil {
		return err
	}

	s.invalidateListings(ctx, manager.Name)
	s.InvalidateVenue(ctx, id)
	s.logger.LogVenueDeleted(ctx, id, manager.Name)
	activity.Emit(ctx, s.publisher, activity.NewEvent(activity.EventVenueDeleted, manager.Name, id))

	return nil
}

// ownedVenue reads the venue fresh from upstream and checks the owner
func (s *service) ownedVenue(ctx context.Context, manager *session.UserSession, id string) (*noroff.Venue, error) {
	venue, err := s.repo.GetVenue(ctx, id)
	if err != nil {
		if noroff.IsNotFound(err) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if venue.OwnerName() != manager.Name {
		return nil, ErrNotOwner
	}
	return venue, nil
}

func (s *service) invalidateListings(ctx context.Context, ownerName string) {
	patterns := []string{
		constants.PATTERN_INVALIDATE_VENUE_LISTS,
		constants.PATTERN_INVALIDATE_SEARCHES,
	}
	for _, pattern := range patterns {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			s.logger.ErrorWithContext(ctx, "Failed to invalidate venue listings", err, map[string]interface{}{"pattern": pattern})
		}
	}
	if err := s.cache.Delete(ctx, constants.BuildOwnerVenuesKey(ownerName)); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate owner venues", err, map[string]interface{}{"owner": ownerName})
	}
}
