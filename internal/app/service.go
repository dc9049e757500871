package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"spellchecker/internal/config"
	"spellchecker/internal/corrector"
	"spellchecker/internal/customdict"
	"spellchecker/internal/lexicon"
	"spellchecker/internal/ngram"
	"spellchecker/internal/tables"
	"spellchecker/pkg/options"
)

// ErrEmptyWord is returned when a custom word is blank.
var ErrEmptyWord = errors.New("app: word is required")

// WordStore persists custom words between restarts.
type WordStore interface {
	Add(ctx context.Context, words ...string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

// Service owns the loaded resources and the corrector built from them.
type Service struct {
	params    options.Parameters
	resources corrector.Resources
	lexicon   *lexicon.Lexicon
	store     WordStore
	workers   int
	logger    *slog.Logger

	// mu serialises custom word changes with the rebuild that follows them
	mu        sync.Mutex
	corrector atomic.Pointer[corrector.SpellCorrector]
	closers   []func() error
}

// New loads the data files named by cfg, connects the custom word store when
// Redis is enabled and builds the corrector.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Service, error) {
	params := cfg.Checker.Parameters()

	tbl, err := tables.Load(cfg.Data.Dir, params.Domain)
	if err != nil {
		return nil, fmt.Errorf("app: tables: %w", err)
	}
	lex, err := lexicon.Load(cfg.Data.LexiconPath(), tbl.Misspelled)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	logger.Info("data loaded",
		slog.String("dir", cfg.Data.Dir),
		slog.Int("lexicon", lex.Len()),
		slog.Int("merged", len(tbl.Merged)),
		slog.Int("split", len(tbl.Split)),
		slog.Int("misspelled", len(tbl.Misspelled)),
		slog.Int("context", len(tbl.Context)),
	)

	res := corrector.Resources{Analyzer: lex, Tables: tbl}
	if params.Variant != options.Simple {
		model, err := ngram.Load(cfg.Data.NGramPath())
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		res.Model = model
	}

	var (
		store   WordStore
		closers []func() error
	)
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		dict := customdict.New(client, params.Domain)
		if err := dict.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("app: redis %s: %w", cfg.Redis.Addr, err)
		}
		store = dict
		closers = append(closers, client.Close)
	}

	svc, err := newService(ctx, params, res, lex, store, cfg.Checker.Workers, logger)
	if err != nil {
		for _, c := range closers {
			_ = c()
		}
		return nil, err
	}
	svc.closers = closers
	return svc, nil
}

func newService(ctx context.Context, params options.Parameters, res corrector.Resources, lex *lexicon.Lexicon, store WordStore, workers int, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	res.Analyzer = lex
	s := &Service{
		params:    params,
		resources: res,
		lexicon:   lex,
		store:     store,
		workers:   workers,
		logger:    logger,
	}
	if store != nil {
		words, err := store.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("app: custom words: %w", err)
		}
		lex.AddCustom(words...)
		logger.Info("custom words loaded", slog.Int("count", len(words)))
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild replaces the corrector. Only the trie variant snapshots the
// vocabulary, the other variants read the lexicon directly.
func (s *Service) rebuild() error {
	res := s.resources
	if s.params.Variant == options.TrieBased {
		res.Vocabulary = s.lexicon.Words()
	}
	sc, err := corrector.NewSpellCorrector(s.params, res, corrector.WithLogger(s.logger))
	if err != nil {
		return fmt.Errorf("app: corrector: %w", err)
	}
	s.corrector.Store(sc)
	return nil
}

func (s *Service) Corrector() *corrector.SpellCorrector { return s.corrector.Load() }

func (s *Service) Workers() int { return s.workers }

// Correct corrects a single sentence.
func (s *Service) Correct(text string) corrector.CorrectionResult {
	return s.corrector.Load().CorrectText(text)
}

// CorrectBatch corrects texts on the configured number of workers.
func (s *Service) CorrectBatch(ctx context.Context, texts []string) ([]corrector.CorrectionResult, error) {
	return s.corrector.Load().CorrectBatch(ctx, texts, s.workers)
}

// AddCustomWord stores word and makes the lexicon accept it.
func (s *Service) AddCustomWord(ctx context.Context, word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return ErrEmptyWord
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Add(ctx, word); err != nil {
			return err
		}
	}
	s.lexicon.AddCustom(word)
	return s.customWordsChanged("custom word added", word)
}

// RemoveCustomWord deletes word from the store and the lexicon overlay.
// Words of the lexicon file itself stay valid.
func (s *Service) RemoveCustomWord(ctx context.Context, word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return ErrEmptyWord
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Remove(ctx, word); err != nil {
			return err
		}
	}
	s.lexicon.RemoveCustom(word)
	return s.customWordsChanged("custom word removed", word)
}

// customWordsChanged must be called with mu held.
func (s *Service) customWordsChanged(msg, word string) error {
	if s.params.Variant != options.TrieBased {
		s.logger.Info(msg, slog.String("word", word))
		return nil
	}
	if err := s.rebuild(); err != nil {
		return err
	}
	s.logger.Info(msg,
		slog.String("word", word),
		slog.Int("vocabulary", s.corrector.Load().VocabularySize()),
	)
	return nil
}

// Close releases the store connection.
func (s *Service) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
