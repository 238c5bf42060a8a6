// Package retrieval defines the fact-retrieval contract over the
// semantically-indexed knowledge tables and its pgvector-backed adapter.
package retrieval

import "context"

// Topic selects which knowledge table a search runs against.
type Topic string

const (
	TopicFAQ     Topic = "faq"
	TopicScheme  Topic = "scheme"
	TopicSymptom Topic = "symptom"
	TopicRisk    Topic = "risk"
)

// Hit is one retrieved fact. Similarity is cosine similarity, higher is
// more relevant; results are ordered descending.
type Hit struct {
	ID         int64
	Text       string
	Similarity float64
}

// Retriever searches one topic's knowledge table by meaning. Errors are
// expected to be degraded to "zero hits" by callers.
type Retriever interface {
	Search(ctx context.Context, topic Topic, query string, topK int) ([]Hit, error)
}

// TableSpec describes the storage layout behind a topic.
type TableSpec struct {
	Name        string
	TitleColumn string
	TextColumn  string
}

var topicTables = map[Topic]TableSpec{
	TopicFAQ:     {Name: "faqs", TitleColumn: "query", TextColumn: "answer"},
	TopicScheme:  {Name: "schemes", TitleColumn: "scheme_name_en", TextColumn: "purpose_en"},
	TopicSymptom: {Name: "symptoms", TitleColumn: "symptom", TextColumn: "answer"},
	TopicRisk:    {Name: "risks", TitleColumn: "risk", TextColumn: "answer"},
}

// TopicTable returns the table layout for a topic. The loader shares this
// mapping so inserts and searches cannot drift apart.
func TopicTable(t Topic) (TableSpec, bool) {
	spec, ok := topicTables[t]
	return spec, ok
}
