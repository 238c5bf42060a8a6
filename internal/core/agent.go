// Package core implements the dialogue engine: intent routing, the
// three-step symptom clarification state machine, and the retrieval and
// generation fallbacks around them.
package core

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"arogyam-chatbot/internal/lang"
	"arogyam-chatbot/internal/llm"
	"arogyam-chatbot/internal/retrieval"
	"arogyam-chatbot/internal/session"
)

// Agent orchestrates one conversation turn end to end. Handle never
// returns an error: every collaborator failure degrades to a defined
// fallback reply.
type Agent struct {
	store      session.Store
	retriever  retrieval.Retriever
	llm        llm.Client
	classifier *lang.Classifier
	logger     *zap.Logger
	topK       int

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewAgent constructs the dialogue engine. topK <= 0 defaults to 3.
func NewAgent(store session.Store, retriever retrieval.Retriever, client llm.Client, classifier *lang.Classifier, logger *zap.Logger, topK int) *Agent {
	if topK <= 0 {
		topK = 3
	}
	return &Agent{
		store:      store,
		retriever:  retriever,
		llm:        client,
		classifier: classifier,
		logger:     logger,
		topK:       topK,
		userLocks:  make(map[string]*sync.Mutex),
	}
}

// Handle processes one inbound message and returns the reply. Calls for
// the same user serialize on a per-user lock; distinct users do not
// contend.
func (a *Agent) Handle(ctx context.Context, userID, message string) string {
	unlock := a.lockUser(userID)
	defer unlock()

	norm := lang.Normalize(message)
	detected := a.classifier.Detect(message)

	sess, err := a.store.Get(ctx, userID)
	if err != nil {
		a.logger.Warn("session load failed, treating as new conversation",
			zap.String("user_id", userID), zap.Error(err))
		sess = nil
	}
	// An active clarification always wins over fresh intent keywords: the
	// user answers the pending question, whatever they typed.
	if sess != nil {
		return a.continueDialogue(ctx, sess, message)
	}

	switch classify(norm) {
	case routeGreeting:
		return canned(greetings, detected)
	case routeScheme:
		return a.handleScheme(ctx, message, norm, detected)
	case routeSymptom:
		return a.handleSymptom(ctx, userID, message, norm, detected)
	default:
		return a.handleFallback(ctx, message, norm, detected)
	}
}

// handleScheme is always single-turn and never touches sessions.
func (a *Agent) handleScheme(ctx context.Context, message, norm string, l lang.Language) string {
	hits := a.search(ctx, retrieval.TopicScheme, norm)
	if len(hits) == 0 {
		return canned(schemeNotFound, l)
	}
	prompt := fmt.Sprintf(schemePrompt, message, hits[0].Text, lang.Instruction(l))
	return a.generate(ctx, prompt, l)
}

// handleSymptom opens the clarification dialogue when a fact is found.
func (a *Agent) handleSymptom(ctx context.Context, userID, message, norm string, l lang.Language) string {
	hits := a.search(ctx, retrieval.TopicSymptom, norm)
	if len(hits) == 0 {
		return canned(symptomNotFound, l)
	}
	sess := &session.Session{
		UserID:   userID,
		Awaiting: session.AwaitingDuration,
		LastFact: hits[0].Text,
		Lang:     l,
	}
	if err := a.store.Save(ctx, sess); err != nil {
		a.logger.Error("failed to save session", zap.String("user_id", userID), zap.Error(err))
	}
	prompt := fmt.Sprintf(symptomPrompt, message, hits[0].Text, lang.Instruction(l))
	return a.generate(ctx, prompt, l)
}

// continueDialogue advances the strict duration -> severity -> extra
// symptoms machine. The raw message is stored verbatim at each step, and
// every reply uses the language locked at dialogue start.
func (a *Agent) continueDialogue(ctx context.Context, sess *session.Session, message string) string {
	l := sess.Lang
	switch sess.Awaiting {
	case session.AwaitingDuration:
		sess.Duration = message
		sess.Awaiting = session.AwaitingSeverity
		a.saveSession(ctx, sess)
		return canned(askSeverity, l)

	case session.AwaitingSeverity:
		sess.Severity = message
		sess.Awaiting = session.AwaitingSymptoms
		a.saveSession(ctx, sess)
		return canned(askExtraSymptoms, l)

	case session.AwaitingSymptoms:
		sess.ExtraSymptoms = message
		// Delete before generating so a failed generation cannot strand
		// the session.
		a.deleteSession(ctx, sess.UserID)
		fact := sess.LastFact
		if fact == "" {
			fact = "user's health issue"
		}
		prompt := fmt.Sprintf(summaryPrompt, fact, sess.Duration, sess.Severity, sess.ExtraSymptoms, lang.Instruction(l))
		return a.generate(ctx, prompt, l)

	default:
		// Unknown awaiting value: reset rather than loop forever.
		a.deleteSession(ctx, sess.UserID)
		return canned(didNotUnderstand, l)
	}
}

// handleFallback tries FAQ facts, then risk facts, then the generic safety
// prompt. Direct fact hits are returned verbatim without the disclaimer.
func (a *Agent) handleFallback(ctx context.Context, message, norm string, l lang.Language) string {
	if hits := a.search(ctx, retrieval.TopicFAQ, norm); len(hits) > 0 {
		return hits[0].Text
	}
	if hits := a.search(ctx, retrieval.TopicRisk, norm); len(hits) > 0 {
		return hits[0].Text
	}
	prompt := fmt.Sprintf(fallbackPrompt, message, lang.Instruction(l))
	return a.generate(ctx, prompt, l)
}

// search degrades every retrieval failure to zero hits.
func (a *Agent) search(ctx context.Context, topic retrieval.Topic, query string) []retrieval.Hit {
	hits, err := a.retriever.Search(ctx, topic, query, a.topK)
	if err != nil {
		a.logger.Warn("retrieval failed, treating as no hits",
			zap.String("topic", string(topic)), zap.Error(err))
		return nil
	}
	return hits
}

// generate calls the generator and appends the disclaimer to whatever
// comes back, substituting a localized placeholder on failure.
func (a *Agent) generate(ctx context.Context, prompt string, l lang.Language) string {
	text, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		a.logger.Error("generation failed", zap.Error(err))
		text = canned(generationUnavailable, l)
	}
	return text + Disclaimer
}

func (a *Agent) saveSession(ctx context.Context, sess *session.Session) {
	if err := a.store.Save(ctx, sess); err != nil {
		a.logger.Error("failed to save session",
			zap.String("user_id", sess.UserID), zap.Error(err))
	}
}

func (a *Agent) deleteSession(ctx context.Context, userID string) {
	if err := a.store.Delete(ctx, userID); err != nil {
		a.logger.Error("failed to delete session",
			zap.String("user_id", userID), zap.Error(err))
	}
}

func (a *Agent) lockUser(userID string) func() {
	a.mu.Lock()
	l, ok := a.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		a.userLocks[userID] = l
	}
	a.mu.Unlock()
	l.Lock()
	return l.Unlock
}
