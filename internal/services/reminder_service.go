package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/petmily/petmily/internal/models"
	"github.com/robfig/cron/v3"
)

type AnniversaryRepository interface {
	ListAll() ([]models.Anniversary, error)
}

// Notifier delivers anniversary reminders. Delivery transports (push, email)
// live outside this service.
type Notifier interface {
	NotifyAnniversary(anniversary models.Anniversary, daysLeft int)
}

type LogNotifier struct{}

func (LogNotifier) NotifyAnniversary(anniversary models.Anniversary, daysLeft int) {
	log.Printf("reminder: %s (profile %d) in %d day(s)", anniversary.Name, anniversary.ProfileID, daysLeft)
}

// ReminderService runs a daily sweep over anniversaries and notifies about
// occurrences inside the lookahead window. Anniversaries recur yearly.
type ReminderService struct {
	anniversaries AnniversaryRepository
	notifier      Notifier
	location      *time.Location
	lookaheadDays int
	cron          *cron.Cron
}

func NewReminderService(anniversaries AnniversaryRepository, notifier Notifier, location *time.Location, lookaheadDays int) *ReminderService {
	if location == nil {
		location = time.UTC
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}
	if lookaheadDays < 0 {
		lookaheadDays = 0
	}
	return &ReminderService{
		anniversaries: anniversaries,
		notifier:      notifier,
		location:      location,
		lookaheadDays: lookaheadDays,
		cron:          cron.New(cron.WithLocation(location)),
	}
}

// Start registers the daily sweep at the given HH:MM time and starts the
// scheduler.
func (service *ReminderService) Start(timeOfDay string) error {
	spec, err := dailyCronSpec(timeOfDay)
	if err != nil {
		return err
	}
	if _, err := service.cron.AddFunc(spec, func() {
		service.RunSweep(time.Now())
	}); err != nil {
		return fmt.Errorf("register reminder sweep: %w", err)
	}
	service.cron.Start()
	return nil
}

func (service *ReminderService) Stop() {
	ctx := service.cron.Stop()
	<-ctx.Done()
}

// RunSweep notifies every anniversary whose next yearly occurrence falls
// within the lookahead window, today included.
func (service *ReminderService) RunSweep(now time.Time) {
	anniversaries, err := service.anniversaries.ListAll()
	if err != nil {
		log.Printf("reminder sweep failed: %v", err)
		return
	}

	today := DateAtLocation(now, service.location)
	for _, anniversary := range anniversaries {
		daysLeft := daysUntilNextOccurrence(anniversary.Date, today, service.location)
		if daysLeft <= service.lookaheadDays {
			service.notifier.NotifyAnniversary(anniversary, daysLeft)
		}
	}
}

func daysUntilNextOccurrence(anniversary time.Time, today time.Time, location *time.Location) int {
	occurrence := time.Date(today.Year(), anniversary.Month(), anniversary.Day(), 0, 0, 0, 0, location)
	if occurrence.Before(today) {
		occurrence = time.Date(today.Year()+1, anniversary.Month(), anniversary.Day(), 0, 0, 0, 0, location)
	}
	return int(occurrence.Sub(today).Hours() / 24)
}

func dailyCronSpec(timeOfDay string) (string, error) {
	parts := strings.Split(strings.TrimSpace(timeOfDay), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid reminder time %q, expected HH:MM", timeOfDay)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeOfDay)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeOfDay)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
