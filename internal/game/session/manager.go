// Package session hosts hero sessions: each Session exclusively owns one Hero
// and serialises the mutations applied to it.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/hero"
	"github.com/cory-johannsen/dicecrawl/internal/game/skill"
)

// Session owns a single Hero. All methods are safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	hero   *hero.Hero
	logger *zap.Logger
}

// ID returns the hero's instance ID.
func (s *Session) ID() uuid.UUID {
	return s.hero.ID
}

// AdjustAttribute applies delta to the hero's kind quantity.
//
// Postcondition: Returns the new quantity, or the hero package error with the
// hero unchanged.
func (s *Session) AdjustAttribute(kind attribute.Kind, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.hero.AdjustAttribute(kind, delta)
	if err != nil {
		s.logger.Debug("adjust attribute rejected",
			zap.Stringer("kind", kind),
			zap.Int("delta", delta),
			zap.Error(err),
		)
		return 0, err
	}
	s.logger.Info("attribute adjusted",
		zap.Stringer("kind", kind),
		zap.Int("delta", delta),
		zap.Int("quantity", q),
	)
	return q, nil
}

// LearnSkill appends sk to the hero's skills.
//
// Postcondition: Returns nil, or an error wrapping hero.ErrDuplicateSkill with
// the skill list unchanged.
func (s *Session) LearnSkill(sk skill.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hero.AddSkill(sk); err != nil {
		s.logger.Debug("learn skill rejected", zap.String("skill", sk.Name), zap.Error(err))
		return err
	}
	s.logger.Info("skill learned",
		zap.String("skill", sk.Name),
		zap.Int("skills", len(s.hero.Skills)),
	)
	return nil
}

// AdvanceLevel moves the hero up one level.
//
// Postcondition: Returns the new level, or an error wrapping
// hero.ErrLevelTooHigh with level, potions, and encounter bonus unchanged.
func (s *Session) AdvanceLevel() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	level, err := s.hero.AdvanceLevel()
	if err != nil {
		s.logger.Debug("advance level rejected", zap.Int("level", level), zap.Error(err))
		return level, err
	}
	s.logger.Info("level advanced",
		zap.Int("level", level),
		zap.Int("potions", s.hero.Potions),
		zap.Int("encounter_bonus", s.hero.EncounterBonus),
	)
	return level, nil
}

// View calls fn with the hero while holding the session lock. fn must not
// retain the hero or call back into the session.
func (s *Session) View(fn func(h *hero.Hero)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.hero)
}

// Manager tracks all active hero sessions.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	logger   *zap.Logger
}

// NewManager creates an empty session Manager.
//
// Precondition: logger must be non-nil.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		logger:   logger,
	}
}

// Start builds a fresh hero from p and registers a session owning it.
//
// Precondition: p must be non-nil.
// Postcondition: Returns the new Session, or the error from hero.New.
func (m *Manager) Start(p *hero.Preset) (*Session, error) {
	h, err := hero.New(p)
	if err != nil {
		return nil, err
	}
	sess := &Session{
		hero: h,
		logger: m.logger.With(
			zap.String("hero_id", h.ID.String()),
			zap.String("hero", h.Name),
		),
	}

	m.mu.Lock()
	m.sessions[h.ID] = sess
	m.mu.Unlock()

	sess.logger.Info("session started", zap.String("preset", p.ID), zap.Int("level", h.Level))
	return sess, nil
}

// End removes the session for id.
//
// Postcondition: The session is no longer tracked. Returns an error if not found.
func (m *Manager) End(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, exists := m.sessions[id]
	if !exists {
		return fmt.Errorf("hero session %s not found", id)
	}
	delete(m.sessions, id)
	sess.logger.Info("session ended")
	return nil
}

// Get returns the session for id.
//
// Postcondition: Returns (session, true) if found, or (nil, false) otherwise.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
