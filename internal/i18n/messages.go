// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package i18n

// Message keys.
const (
	MetaEntries       = "meta.entries"
	MetaRoots         = "meta.roots"
	MetaMastered      = "meta.mastered"
	MetaQuiz          = "meta.quiz"
	LoadFailed        = "load.failed"
	LoadHint          = "load.hint"
	ListEmpty         = "list.empty"
	ListRoot          = "list.root"
	ListGloss         = "list.gloss"
	ListWords         = "list.words"
	ListStatus        = "list.status"
	ListNoGloss       = "list.noGloss"
	DetailNotFound    = "detail.notFound"
	DetailSuggest     = "detail.suggest"
	DetailGloss       = "detail.gloss"
	DetailCount       = "detail.count"
	DetailMastered    = "detail.mastered"
	DetailReview      = "detail.review"
	DetailIntro       = "detail.intro"
	DetailNoExamples  = "detail.noExamples"
	DetailWord        = "detail.word"
	DetailBreakdown   = "detail.breakdown"
	DetailMeaning     = "detail.meaning"
	FlashEmpty        = "flash.empty"
	FlashEmptyHint    = "flash.emptyHint"
	FlashMeta         = "flash.meta"
	FlashPrompt       = "flash.prompt"
	FlashHint         = "flash.hint"
	FlashHintFallback = "flash.hintFallback"
	FlashWords        = "flash.words"
	FlashBreakdown    = "flash.breakdown"
	FlashHelp         = "flash.help"
	QuizInsufficient  = "quiz.insufficient"
	QuizQuestion      = "quiz.question"
	QuizCorrect       = "quiz.correct"
	QuizWrong         = "quiz.wrong"
	QuizScore         = "quiz.score"
	QuizHelp          = "quiz.help"
	QuizAnswered      = "quiz.answered"
	LangCurrent       = "lang.current"
	LangSet           = "lang.set"
	LangUnsupported   = "lang.unsupported"
	ResetDone         = "reset.done"
	UnknownCommand    = "input.unknown"
	SaveFailed        = "save.failed"
	BuildDone         = "build.done"
)

// messages are the message catalogs keyed by language tag.
var messages = map[string]map[string]string{
	"zh-CN": {
		MetaEntries:       "词条 %d",
		MetaRoots:         "词根/词缀 %d",
		MetaMastered:      "已掌握 %d",
		MetaQuiz:          "测验 %d/%d",
		LoadFailed:        "加载失败: %v",
		LoadHint:          "请确认 %s 文件存在。",
		ListEmpty:         "没有找到匹配项，试试更短关键词。",
		ListRoot:          "词根",
		ListGloss:         "含义",
		ListWords:         "词数",
		ListStatus:        "状态",
		ListNoGloss:       "查看例词联想",
		DetailNotFound:    "未找到该词根数据。",
		DetailSuggest:     "你是否要找: %s",
		DetailGloss:       "建议通过例词记忆",
		DetailCount:       "%d 个相关词",
		DetailMastered:    "已掌握",
		DetailReview:      "待复习",
		DetailIntro:       "例词拆解（优先展示包含此词根/词缀的词条）:",
		DetailNoExamples:  "暂无相关例词。",
		DetailWord:        "单词",
		DetailBreakdown:   "拆解",
		DetailMeaning:     "释义",
		FlashEmpty:        "没有可用闪卡。",
		FlashEmptyHint:    "请检查数据文件。",
		FlashMeta:         "第 %d/%d 张 | 已掌握 %d",
		FlashPrompt:       "请回忆这个词根/词缀的含义和常见单词:",
		FlashHint:         "提示: %s",
		FlashHintFallback: "建议通过例词理解",
		FlashWords:        "例词: %s",
		FlashBreakdown:    "拆解示例: %s -> %s",
		FlashHelp:         "[r] 显示答案  [a] 再来一次  [k] 我认识  [n] 随机跳转  [q] 退出",
		QuizInsufficient:  "可用于选择题的数据不足。",
		QuizQuestion:      "哪个词根/词缀最接近这个提示: “%s”",
		QuizCorrect:       "回答正确。例词: %s",
		QuizWrong:         "回答错误。正确答案是 %s。例词: %s",
		QuizScore:         "正确率: %d / %d",
		QuizHelp:          "输入选项编号或词根作答  [n] 下一题  [q] 退出",
		QuizAnswered:      "本题已作答，输入 n 进入下一题。",
		LangCurrent:       "当前语言: %s",
		LangSet:           "语言已设置为 %s",
		LangUnsupported:   "不支持的语言: %s",
		ResetDone:         "学习进度已重置。",
		UnknownCommand:    "未知命令: %s",
		SaveFailed:        "保存进度失败: %v",
		BuildDone:         "已写入 %s: %d 个词条, %d 个词根",
	},
	"en-US": {
		MetaEntries:       "Entries %d",
		MetaRoots:         "Roots/affixes %d",
		MetaMastered:      "Mastered %d",
		MetaQuiz:          "Quiz %d/%d",
		LoadFailed:        "Failed to load: %v",
		LoadHint:          "Make sure %s exists.",
		ListEmpty:         "No matches found. Try a shorter keyword.",
		ListRoot:          "Root",
		ListGloss:         "Meaning",
		ListWords:         "Words",
		ListStatus:        "Status",
		ListNoGloss:       "see example words",
		DetailNotFound:    "Root not found.",
		DetailSuggest:     "Did you mean: %s",
		DetailGloss:       "Learn it from the example words",
		DetailCount:       "%d related words",
		DetailMastered:    "Mastered",
		DetailReview:      "To review",
		DetailIntro:       "Example breakdowns (entries containing this root/affix):",
		DetailNoExamples:  "No related examples yet.",
		DetailWord:        "Word",
		DetailBreakdown:   "Breakdown",
		DetailMeaning:     "Meaning",
		FlashEmpty:        "No flashcards available.",
		FlashEmptyHint:    "Check the dataset file.",
		FlashMeta:         "Card %d/%d | Mastered %d",
		FlashPrompt:       "Recall the meaning of this root/affix and some common words:",
		FlashHint:         "Hint: %s",
		FlashHintFallback: "Learn it from the example words",
		FlashWords:        "Examples: %s",
		FlashBreakdown:    "Breakdown: %s -> %s",
		FlashHelp:         "[r] reveal  [a] again  [k] know it  [n] random  [q] quit",
		QuizInsufficient:  "Not enough data for a multiple-choice quiz.",
		QuizQuestion:      "Which root/affix best matches the hint: \"%s\"",
		QuizCorrect:       "Correct. Examples: %s",
		QuizWrong:         "Wrong. The answer is %s. Examples: %s",
		QuizScore:         "Score: %d / %d",
		QuizHelp:          "Answer with an option number or root  [n] next  [q] quit",
		QuizAnswered:      "Already answered. Enter n for the next question.",
		LangCurrent:       "Current language: %s",
		LangSet:           "Language set to %s",
		LangUnsupported:   "Unsupported language: %s",
		ResetDone:         "Study progress has been reset.",
		UnknownCommand:    "Unknown command: %s",
		SaveFailed:        "Failed to save progress: %v",
		BuildDone:         "Wrote %s with %d entries and %d roots",
	},
}
