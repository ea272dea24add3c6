package scheduler_jobs

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/messageService"
)

type awaitingLister interface {
	ListBetsAwaitingSettlement(now time.Time) ([]models.Bet, error)
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// BetLockReminder posts each bet once, the first run after its lock time
// passes, while it is still unsettled.
type BetLockReminder struct {
	ledger    awaitingLister
	sender    embedSender
	channelID string
	log       *zap.Logger
	now       func() time.Time

	mu       sync.Mutex
	reminded map[string]struct{}
}

func NewBetLockReminder(ledger awaitingLister, sender embedSender, channelID string, log *zap.Logger) *BetLockReminder {
	return &BetLockReminder{
		ledger:    ledger,
		sender:    sender,
		channelID: channelID,
		log:       log,
		now:       time.Now,
		reminded:  make(map[string]struct{}),
	}
}

func (r *BetLockReminder) CheckBetLocks() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bets, err := r.ledger.ListBetsAwaitingSettlement(r.now())
	if err != nil {
		return fmt.Errorf("error listing locked bets: %w", err)
	}

	pending := make([]models.Bet, 0, len(bets))
	waiting := make(map[string]struct{}, len(bets))
	for _, bet := range bets {
		waiting[bet.ID] = struct{}{}
		if _, done := r.reminded[bet.ID]; !done {
			pending = append(pending, bet)
		}
	}

	// Settled bets drop out of the listing; forget them.
	for id := range r.reminded {
		if _, ok := waiting[id]; !ok {
			delete(r.reminded, id)
		}
	}

	if len(pending) == 0 {
		return nil
	}

	// One embed holds at most MaxEmbedFields bets; longer backlogs go out
	// as several messages. Bets in a chunk that failed stay pending.
	for start := 0; start < len(pending); start += messageService.MaxEmbedFields {
		chunk := pending[start:min(start+messageService.MaxEmbedFields, len(pending))]
		if _, err := r.sender.ChannelMessageSendEmbed(r.channelID, messageService.BuildLockReminderEmbed(chunk)); err != nil {
			return fmt.Errorf("error sending lock reminder: %w", err)
		}
		for _, bet := range chunk {
			r.reminded[bet.ID] = struct{}{}
		}
		r.log.Info("lock reminder sent", zap.String("channel_id", r.channelID), zap.Int("bets", len(chunk)))
	}
	return nil
}
