package services

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Tazeen604/ZerZabar-sub002/models"
)

// NotificationFetcher is the slice of the storefront client the poller uses.
type NotificationFetcher interface {
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	ClearNotifications(ctx context.Context) error
}

// NotificationService keeps an eventually-consistent local view of admin
// notifications. A background poller refreshes it on a fixed interval;
// overlapping refreshes are de-duplicated so a slow response cannot race a
// newer one. Poll failures are logged, never surfaced to the dashboard.
type NotificationService struct {
	mu            sync.RWMutex
	notifications []models.Notification
	unread        int
	fetchedAt     time.Time

	client   NotificationFetcher
	interval time.Duration

	pollMu    sync.Mutex
	inFlight  bool
	stopCh    chan struct{}
	stopOnce  sync.Once
	startOnce sync.Once
}

func NewNotificationService(client NotificationFetcher, interval time.Duration) *NotificationService {
	return &NotificationService{
		client:   client,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start fetches once immediately, then keeps refreshing until Stop is
// called. Safe to call only once.
func (s *NotificationService) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.Refresh(ctx)
		go s.loop(ctx)
	})
}

// Stop deterministically ends the poll loop.
func (s *NotificationService) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *NotificationService) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			log.Println("[notifications] poller stopped")
			return
		case <-ctx.Done():
			log.Println("[notifications] poller context cancelled")
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// Refresh fetches the notification list. If another refresh is already in
// flight the call is dropped instead of stacking a second request.
func (s *NotificationService) Refresh(ctx context.Context) {
	s.pollMu.Lock()
	if s.inFlight {
		s.pollMu.Unlock()
		return
	}
	s.inFlight = true
	s.pollMu.Unlock()

	defer func() {
		s.pollMu.Lock()
		s.inFlight = false
		s.pollMu.Unlock()
	}()

	list, err := s.client.GetNotifications(ctx)
	if err != nil {
		log.Printf("[notifications] refresh failed: %v", err)
		return
	}
	s.setAll(list)
}

func (s *NotificationService) setAll(list []models.Notification) {
	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}
	s.mu.Lock()
	s.notifications = list
	s.unread = unread
	s.fetchedAt = time.Now()
	s.mu.Unlock()
}

// Snapshot returns the current local view.
func (s *NotificationService) Snapshot() models.NotificationsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return models.NotificationsSnapshot{
		Notifications: out,
		UnreadCount:   s.unread,
		FetchedAt:     s.fetchedAt,
	}
}

// UnreadCount is never negative.
func (s *NotificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

// Recent returns the top n notifications by descending CreatedAt. Ties keep
// their original order (stable sort).
func (s *NotificationService) Recent(n int) []models.Notification {
	s.mu.RLock()
	list := make([]models.Notification, len(s.notifications))
	copy(list, s.notifications)
	s.mu.RUnlock()

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// MarkAsRead flips the local read flag only after the backend acknowledges.
// On failure local state stays put and the error is logged.
func (s *NotificationService) MarkAsRead(ctx context.Context, id string) error {
	if err := s.client.MarkNotificationRead(ctx, id); err != nil {
		log.Printf("[notifications] mark-read failed id=%s: %v", id, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id && !s.notifications[i].Read {
			s.notifications[i].Read = true
			if s.unread > 0 {
				s.unread--
			}
			break
		}
	}
	return nil
}

// MarkAllAsRead is the bulk form of MarkAsRead.
func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	if err := s.client.MarkAllNotificationsRead(ctx); err != nil {
		log.Printf("[notifications] mark-all-read failed: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.unread = 0
	return nil
}

// Clear deletes all notifications upstream and locally.
func (s *NotificationService) Clear(ctx context.Context) error {
	if err := s.client.ClearNotifications(ctx); err != nil {
		log.Printf("[notifications] clear failed: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
	s.unread = 0
	return nil
}
