package arangodb

// insightDoc is the document shape stored in the insights collection.
type insightDoc struct {
	Topic       string `json:"topic"`
	InsightText string `json:"insight_text"`
}

// sampleInsightsQuery picks up to @limit random insight texts for a topic.
const sampleInsightsQuery = `
FOR i IN @@collection
	FILTER i.topic == @topic
	SORT RAND()
	LIMIT @limit
	RETURN { topic: i.topic, insight_text: i.insight_text }
`
