package sentiment

import (
	"context"
	"fmt"

	"crosscheck/internal/textnorm"
)

// LexiconAnalyzer is the local strategy: signed word counts over a fixed
// polarity lexicon, normalized by token count.
type LexiconAnalyzer struct{}

func (LexiconAnalyzer) Name() string {
	return "lexicon"
}

func (LexiconAnalyzer) Analyze(_ context.Context, text string) (Result, error) {
	tokens := textnorm.Tokenize(text)
	if len(tokens) == 0 {
		return Result{Score: 0, Label: LabelNeutral, Details: "no scorable tokens"}, nil
	}

	var positives, negatives int
	for _, token := range tokens {
		if _, ok := positiveWords[token]; ok {
			positives++
		}
		if _, ok := negativeWords[token]; ok {
			negatives++
		}
	}

	score := float64(positives-negatives) / float64(len(tokens))
	return Result{
		Score: score,
		Label: labelFor(score),
		Details: fmt.Sprintf("%d positive, %d negative of %d tokens",
			positives, negatives, len(tokens)),
	}, nil
}

var positiveWords = map[string]struct{}{
	"love": {}, "loved": {}, "loves": {}, "lovely": {},
	"like": {}, "liked": {}, "likes": {},
	"great": {}, "greatest": {},
	"good": {}, "better": {}, "best": {},
	"happy": {}, "happiness": {}, "joy": {}, "joyful": {},
	"excellent": {}, "amazing": {}, "awesome": {}, "wonderful": {},
	"fantastic": {}, "brilliant": {}, "beautiful": {}, "delightful": {},
	"positive": {}, "success": {}, "successful": {}, "succeed": {},
	"win": {}, "wins": {}, "winner": {}, "winning": {}, "won": {},
	"gain": {}, "gains": {}, "growth": {}, "grow": {}, "growing": {},
	"improve": {}, "improved": {}, "improvement": {}, "improving": {},
	"strong": {}, "stronger": {}, "strength": {},
	"rise": {}, "rises": {}, "rising": {}, "soar": {}, "soars": {},
	"surge": {}, "surges": {}, "rally": {}, "rallies": {},
	"boost": {}, "boosts": {}, "boosted": {},
	"record": {}, "breakthrough": {}, "progress": {},
	"hope": {}, "hopeful": {}, "optimism": {}, "optimistic": {},
	"celebrate": {}, "celebrates": {}, "celebrated": {}, "celebration": {},
	"praise": {}, "praised": {}, "praises": {},
	"support": {}, "supports": {}, "supported": {},
	"benefit": {}, "benefits": {}, "beneficial": {},
	"safe": {}, "safer": {}, "safety": {},
	"peace": {}, "peaceful": {}, "agreement": {}, "agree": {},
	"recover": {}, "recovery": {}, "recovered": {},
	"thrive": {}, "thriving": {}, "prosper": {}, "prosperity": {},
	"achievement": {}, "achieve": {}, "achieved": {},
	"innovative": {}, "innovation": {},
	"generous": {}, "kind": {}, "kindness": {},
	"sunny": {}, "bright": {}, "warm": {}, "pleasant": {},
	"smile": {}, "smiles": {}, "smiling": {},
	"favorite": {}, "popular": {}, "impressive": {},
	"healthy": {}, "vibrant": {}, "calm": {},
	"enjoy": {}, "enjoyed": {}, "enjoyable": {},
	"proud": {}, "pride": {}, "honor": {}, "honored": {},
	"relief": {}, "relieved": {}, "reassuring": {},
	"promising": {}, "remarkable": {}, "outstanding": {},
}

var negativeWords = map[string]struct{}{
	"hate": {}, "hated": {}, "hates": {}, "hatred": {},
	"bad": {}, "worse": {}, "worst": {},
	"terrible": {}, "horrible": {}, "awful": {}, "dreadful": {},
	"sad": {}, "sadness": {}, "unhappy": {}, "misery": {}, "miserable": {},
	"angry": {}, "anger": {}, "furious": {}, "rage": {},
	"fear": {}, "fears": {}, "feared": {}, "afraid": {}, "scared": {},
	"negative": {}, "failure": {}, "fail": {}, "fails": {}, "failed": {},
	"lose": {}, "loses": {}, "losing": {}, "lost": {}, "loss": {}, "losses": {},
	"decline": {}, "declines": {}, "declining": {}, "declined": {},
	"drop": {}, "drops": {}, "dropped": {}, "plunge": {}, "plunges": {},
	"crash": {}, "crashes": {}, "crashed": {}, "collapse": {}, "collapsed": {},
	"crisis": {}, "disaster": {}, "catastrophe": {}, "tragedy": {}, "tragic": {},
	"death": {}, "deaths": {}, "dead": {}, "die": {}, "dies": {}, "died": {}, "kill": {}, "killed": {},
	"war": {}, "conflict": {}, "violence": {}, "violent": {}, "attack": {}, "attacks": {},
	"threat": {}, "threats": {}, "threaten": {}, "threatened": {},
	"danger": {}, "dangerous": {}, "risk": {}, "risks": {}, "risky": {},
	"weak": {}, "weaker": {}, "weakness": {},
	"poor": {}, "poverty": {}, "broke": {}, "broken": {},
	"hurt": {}, "hurts": {}, "harm": {}, "harms": {}, "harmful": {},
	"damage": {}, "damages": {}, "damaged": {}, "destroy": {}, "destroyed": {},
	"corrupt": {}, "corruption": {}, "fraud": {}, "scandal": {},
	"blame": {}, "blamed": {}, "accuse": {}, "accused": {},
	"worry": {}, "worries": {}, "worried": {}, "anxious": {}, "anxiety": {},
	"panic": {}, "chaos": {}, "turmoil": {}, "unrest": {},
	"suffer": {}, "suffers": {}, "suffering": {}, "suffered": {},
	"pain": {}, "painful": {}, "grief": {}, "mourn": {}, "mourning": {},
	"problem": {}, "problems": {}, "trouble": {}, "troubled": {},
	"wrong": {}, "mistake": {}, "mistakes": {}, "error": {}, "errors": {},
	"ugly": {}, "dirty": {}, "toxic": {}, "gloomy": {}, "grim": {},
	"disappointing": {}, "disappointed": {}, "disappointment": {},
	"reject": {}, "rejected": {}, "denies": {}, "denied": {},
	"ban": {}, "banned": {}, "lawsuit": {}, "sued": {},
	"recession": {}, "inflation": {}, "layoff": {}, "layoffs": {},
	"shortage": {}, "outbreak": {}, "epidemic": {}, "pandemic": {},
}
