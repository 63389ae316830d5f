package notes

// Prompt is the fixed instruction sent with every recording
const Prompt = `Transcribe this meeting audio. If it is not in English, translate it to English.
Then produce structured meeting notes and return them as a single JSON object with exactly these keys:

{
  "title": "short meeting title",
  "description": "one sentence describing the meeting",
  "date": "YYYY-MM-DD if mentioned, otherwise empty",
  "participants": ["names or speaker labels"],
  "executiveSummary": "short abstract summary paragraph",
  "keyPoints": ["key point"],
  "actionItems": ["action item, with owner when known"],
  "decisions": ["decision taken"],
  "sentiment": "Positive, Neutral or Negative",
  "sentimentInsights": "brief paragraph about the tone of the meeting"
}

Return only the JSON object, without markdown fences or commentary.`
