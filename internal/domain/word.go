package domain

// WordPair is a source word with its translation
type WordPair struct {
	Source string `db:"source_text"`
	Target string `db:"target_text"`
}

// PendingQuiz is the single word prompt a user still has to answer
type PendingQuiz struct {
	Prompt string
	Answer string
}

// QuizFor builds the quiz asked for a word pair: the source is shown,
// the target is expected back.
func QuizFor(w WordPair) PendingQuiz {
	return PendingQuiz{Prompt: w.Source, Answer: w.Target}
}
