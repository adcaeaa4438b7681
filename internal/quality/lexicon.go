// internal/quality/lexicon.go
package quality

// DefaultLexicon 返回内置的 AFINN 风格情感词典
// 权重范围 [-5, 5]，外部词典文件缺失时作为兜底
func DefaultLexicon() map[string]int {
	return map[string]int{
		// 正向
		"good": 3, "great": 3, "excellent": 3, "amazing": 4, "awesome": 4,
		"outstanding": 5, "superb": 5, "wonderful": 4, "fantastic": 4,
		"best": 3, "better": 2, "positive": 2, "success": 2, "successful": 3,
		"win": 4, "wins": 4, "winner": 4, "winning": 4, "won": 3,
		"improve": 2, "improved": 2, "improvement": 2, "improving": 2,
		"benefit": 2, "benefits": 2, "beneficial": 2, "advantage": 2,
		"advantages": 2, "effective": 2, "efficient": 2, "gain": 2,
		"gains": 2, "growth": 2, "growing": 2, "strong": 2, "stronger": 2,
		"love": 3, "loved": 3, "loves": 3, "like": 2, "liked": 2, "likes": 2,
		"happy": 3, "happiness": 3, "joy": 3, "glad": 3, "pleased": 3,
		"pleasant": 3, "delight": 3, "delighted": 3, "enjoy": 2, "enjoyed": 2,
		"hope": 2, "hopeful": 2, "optimistic": 2, "promising": 2,
		"safe": 1, "secure": 2, "support": 2, "supported": 2, "supports": 2,
		"reliable": 2, "robust": 2, "stable": 2, "valuable": 2, "useful": 2,
		"helpful": 2, "clear": 1, "clean": 2, "perfect": 3, "nice": 3,
		"beautiful": 3, "brilliant": 4, "innovative": 2, "progress": 2,
		"achieve": 2, "achieved": 2, "achievement": 3, "accomplish": 2,
		"important": 2, "significant": 1, "interesting": 2, "impressive": 3,
		"recommend": 2, "recommended": 2, "easy": 1, "easier": 2,
		"fast": 1, "faster": 2, "free": 1, "fresh": 1, "rich": 2,
		"thank": 2, "thanks": 2, "welcome": 2, "worth": 2, "worthy": 2,
		"true": 2, "trust": 1, "trusted": 2, "popular": 3, "proud": 2,
		"calm": 2, "comfortable": 2, "energetic": 2, "excited": 3,
		"exciting": 3, "favorite": 2, "fit": 1, "fun": 4, "funny": 4,

		// 负向
		"bad": -3, "worse": -3, "worst": -3, "terrible": -3, "awful": -3,
		"horrible": -3, "poor": -2, "negative": -2, "fail": -2, "failed": -2,
		"failure": -2, "fails": -2, "failing": -2, "lose": -3, "loses": -3,
		"losing": -3, "lost": -3, "loss": -3, "losses": -3,
		"problem": -2, "problems": -2, "problematic": -2, "issue": -2,
		"issues": -2, "error": -2, "errors": -2, "bug": -2, "bugs": -2,
		"broken": -1, "break": -1, "breaks": -1, "crash": -2, "crashed": -2,
		"hate": -3, "hated": -3, "hates": -3, "dislike": -2, "disliked": -2,
		"sad": -2, "unhappy": -2, "angry": -3, "anger": -3, "mad": -3,
		"fear": -2, "afraid": -2, "scared": -2, "worry": -3, "worried": -3,
		"worries": -3, "anxious": -2, "panic": -3, "threat": -2,
		"threats": -2, "danger": -2, "dangerous": -2, "risk": -2,
		"risks": -2, "risky": -2, "harm": -2, "harmful": -2, "hurt": -2,
		"damage": -3, "damaged": -3, "damages": -3, "destroy": -3,
		"destroyed": -3, "destruction": -3, "disaster": -2, "crisis": -3,
		"weak": -2, "weaker": -2, "weakness": -2, "wrong": -2, "mistake": -2,
		"mistakes": -2, "difficult": -1, "hard": -1, "harder": -2,
		"slow": -2, "slower": -2, "expensive": -2, "costly": -2,
		"waste": -1, "wasted": -2, "useless": -2, "worthless": -2,
		"decline": -2, "declined": -2, "decrease": -2, "decreased": -2,
		"drop": -1, "dropped": -1, "fall": -1, "fell": -1, "falling": -1,
		"death": -2, "dead": -3, "die": -3, "died": -3, "kill": -3,
		"killed": -3, "sick": -2, "illness": -2, "disease": -1, "pain": -2,
		"painful": -2, "suffer": -2, "suffering": -2, "misery": -2,
		"ugly": -3, "dirty": -2, "boring": -3, "annoying": -2, "stupid": -2,
		"doubt": -1, "doubtful": -1, "unclear": -1, "confused": -2,
		"confusing": -2, "refuse": -2, "refused": -2, "reject": -1,
		"rejected": -1, "deny": -2, "denied": -2, "block": -1, "blocked": -1,
		"limit": -1, "limited": -1, "warning": -3, "warn": -2, "attack": -1,
		"attacked": -1, "blame": -2, "blamed": -2, "cheat": -3, "fraud": -4,
	}
}
