package viewmodel

import (
	"context"
	"strings"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// MessageFilter filtros de la bandeja.
type MessageFilter struct {
	UnreadOnly    bool
	ImportantOnly bool
}

func (f MessageFilter) keep(m *entity.Message) bool {
	if f.UnreadOnly && m.Read {
		return false
	}
	if f.ImportantOnly && !m.Important {
		return false
	}
	return true
}

// MessageForm mensaje nuevo. RecipientID nil envía a todos.
type MessageForm struct {
	RecipientID *int64
	Title       string
	Body        string
	Important   bool
}

// MessageViewModel bandeja de mensajes.
type MessageViewModel struct {
	scope    *Scope
	messages repository.MessageRepository
	store    repository.PendingStore
	sessions SessionSource
	trigger  SyncTrigger
	list     *Container[Listing[*entity.Message]]
	action   *Container[Outcome]
}

func NewMessageViewModel(ctx context.Context, messages repository.MessageRepository, store repository.PendingStore, sessions SessionSource, trigger SyncTrigger) *MessageViewModel {
	return &MessageViewModel{
		scope:    NewScope(ctx),
		messages: messages,
		store:    store,
		sessions: sessions,
		trigger:  trigger,
		list:     NewContainer[Listing[*entity.Message]](),
		action:   NewContainer[Outcome](),
	}
}

func (vm *MessageViewModel) List() *Container[Listing[*entity.Message]] { return vm.list }
func (vm *MessageViewModel) Action() *Container[Outcome]               { return vm.action }
func (vm *MessageViewModel) Close()                                    { vm.scope.Close() }

// Load combina los mensajes del servidor con los enviados desde el dispositivo que siguen en cola.
func (vm *MessageViewModel) Load(ctx context.Context, filter MessageFilter) State[Listing[*entity.Message]] {
	return op(vm.scope, ctx, vm.list, func(ctx context.Context) (Listing[*entity.Message], error) {
		sess, err := requireSession(ctx, vm.sessions)
		if err != nil {
			return Listing[*entity.Message]{}, err
		}
		recs, err := vm.store.ListPending(ctx, entity.PendingKindMessage)
		if err != nil {
			return Listing[*entity.Message]{}, err
		}
		pending := make([]*entity.Message, 0, len(recs))
		for _, rec := range recs {
			p, ok := rec.(*entity.PendingMessage)
			if !ok {
				continue
			}
			pending = append(pending, &entity.Message{
				SenderID:    sess.UserID,
				SenderName:  sess.Name,
				RecipientID: p.RecipientID,
				Title:       p.Title,
				Body:        p.Body,
				Important:   p.Important,
				Read:        true,
				SentAt:      p.CreatedAt,
				ClientRef:   p.ClientRef,
				LocalID:     p.ID,
			})
		}

		var out Listing[*entity.Message]
		remote, err := vm.messages.List(ctx)
		if err != nil {
			if !isOffline(err) {
				return Listing[*entity.Message]{}, err
			}
			out.Offline = true
		}
		confirmed := make(map[string]struct{}, len(remote))
		for _, m := range remote {
			if m.ClientRef != "" {
				confirmed[m.ClientRef] = struct{}{}
			}
		}
		for _, m := range pending {
			if _, ok := confirmed[m.ClientRef]; !ok && filter.keep(m) {
				out.Items = append(out.Items, m)
			}
		}
		for _, m := range remote {
			if filter.keep(m) {
				out.Items = append(out.Items, m)
			}
		}
		return out, nil
	})
}

// Send guarda el mensaje en el dispositivo.
func (vm *MessageViewModel) Send(ctx context.Context, form MessageForm) State[Outcome] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (Outcome, error) {
		if _, err := requireSession(ctx, vm.sessions); err != nil {
			return Outcome{}, err
		}
		rec := &entity.PendingMessage{
			RecipientID: form.RecipientID,
			Title:       strings.TrimSpace(form.Title),
			Body:        strings.TrimSpace(form.Body),
			Important:   form.Important,
		}
		return enqueue(ctx, vm.store, vm.trigger, rec)
	})
}
