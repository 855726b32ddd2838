// Package viewmodel expone el estado observable de cada pantalla del WMS
// y traduce las acciones del usuario en consultas o escrituras local-first.
package viewmodel

import (
	"errors"
	"fmt"
	"sync"
)

// Phase variante del estado de una operación.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// State unión Idle | Loading | Success(Data) | Error(Message).
// Data solo es significativo en Success; Message y Err solo en Error.
type State[T any] struct {
	Phase   Phase
	Data    T
	Message string
	Err     error
}

// Idle estado inicial.
func Idle[T any]() State[T] { return State[T]{Phase: PhaseIdle} }

// Loading operación en curso.
func Loading[T any]() State[T] { return State[T]{Phase: PhaseLoading} }

// Success operación completada con data.
func Success[T any](data T) State[T] { return State[T]{Phase: PhaseSuccess, Data: data} }

// Failure operación fallida; el mensaje es legible para el usuario.
func Failure[T any](err error) State[T] {
	return State[T]{Phase: PhaseError, Message: userMessage(err), Err: err}
}

// ErrInvalidTransition transición no permitida por la máquina de estados.
var ErrInvalidTransition = errors.New("transición de estado inválida")

func allowed(from, to Phase) bool {
	switch to {
	case PhaseLoading:
		return true
	case PhaseSuccess, PhaseError:
		return from == PhaseLoading
	case PhaseIdle:
		return from != PhaseLoading
	}
	return false
}

// Container contenedor observable de un State. Los suscriptores reciben siempre el último
// valor (canales conflados de capacidad 1): un lector lento nunca bloquea al publicador.
type Container[T any] struct {
	mu    sync.Mutex
	state State[T]
	gen   uint64
	subs  map[int]chan State[T]
	next  int
}

// NewContainer construye un contenedor en Idle.
func NewContainer[T any]() *Container[T] {
	return &Container[T]{state: Idle[T](), subs: make(map[int]chan State[T])}
}

// Get devuelve el estado actual.
func (c *Container[T]) Get() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe entrega el estado actual y cada cambio posterior. cancel cierra el canal.
func (c *Container[T]) Subscribe() (<-chan State[T], func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.next
	c.next++
	ch := make(chan State[T], 1)
	ch <- c.state
	c.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}
}

// Begin pasa a Loading y devuelve el ticket de la operación. Un Begin posterior invalida
// los tickets anteriores: gana siempre la última operación disparada.
func (c *Container[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.publish(Loading[T]())
	return c.gen
}

// Complete cierra la operación del ticket con Success o Error. Si el ticket ya no es el vigente
// el resultado se descarta y se devuelve el estado actual.
func (c *Container[T]) Complete(ticket uint64, next State[T]) (State[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ticket != c.gen {
		return c.state, nil
	}
	if next.Phase != PhaseSuccess && next.Phase != PhaseError {
		return c.state, ErrInvalidTransition
	}
	if !allowed(c.state.Phase, next.Phase) {
		return c.state, ErrInvalidTransition
	}
	c.publish(next)
	return next, nil
}

// Reset vuelve a Idle (p. ej. al cerrar sesión). No interrumpe una operación en curso.
func (c *Container[T]) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !allowed(c.state.Phase, PhaseIdle) {
		return ErrInvalidTransition
	}
	c.publish(Idle[T]())
	return nil
}

// publish requiere c.mu.
func (c *Container[T]) publish(s State[T]) {
	c.state = s
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}

// run ejecuta fn como una operación completa del contenedor: Loading → Success | Error.
func run[T any](c *Container[T], fn func() (T, error)) State[T] {
	ticket := c.Begin()
	data, err := fn()
	var next State[T]
	if err != nil {
		next = Failure[T](err)
	} else {
		next = Success(data)
	}
	if _, cerr := c.Complete(ticket, next); cerr != nil {
		return Failure[T](cerr)
	}
	return next
}
