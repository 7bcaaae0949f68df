package llm

import (
	"context"
	"regexp"
	"strings"
	"time"

	"Fanhub/config"
	"Fanhub/pkg/log"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// TagGenerator 基于多模态模型给帖子推荐标签
type TagGenerator struct {
	client openai.Client
	model  string
}

func NewTagGenerator(conf *config.Config) *TagGenerator {
	if conf.LLM == nil || conf.LLM.APIKey == "" {
		return &TagGenerator{}
	}
	client := openai.NewClient(
		option.WithAPIKey(conf.LLM.APIKey),
		option.WithBaseURL(conf.LLM.BaseURL),
	)
	return &TagGenerator{client: client, model: conf.LLM.Model}
}

// GenPostTags 根据配文和媒体链接生成候选标签，失败时返回空列表，不阻塞发帖
func (g *TagGenerator) GenPostTags(ctx context.Context, caption, mediaURL string) []string {
	if g.model == "" {
		return make([]string, 0)
	}

	contentParts := []openai.ChatCompletionContentPartUnionParam{
		{
			OfText: &openai.ChatCompletionContentPartTextParam{
				Text: "作为内容运营专家，结合配文和图片，只输出5个话题标签，用#开头，用空格分隔，不要任何其他内容。配文：" + caption,
			},
		},
	}
	if mediaURL != "" {
		contentParts = append(contentParts, openai.ChatCompletionContentPartUnionParam{
			OfImageURL: &openai.ChatCompletionContentPartImageParam{
				ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
					URL: mediaURL,
				},
			},
		})
	}

	startTime := time.Now()
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfArrayOfContentParts: contentParts,
		},
	}
	params := openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
	}
	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to gen tag", zap.Error(err))
		return make([]string, 0)
	}
	if len(completion.Choices) == 0 {
		log.L.Error("gen tag: empty choices", zap.String("model", g.model))
		return make([]string, 0)
	}
	content := completion.Choices[0].Message.Content
	log.L.Info("gen tag", zap.String("tag", content), zap.Duration("gen time", time.Since(startTime)))
	return ParseTags(content)
}

func ParseTags(input string) []string {
	re := regexp.MustCompile(`#[^\s#]+`)
	matches := re.FindAllString(input, -1)

	var tags []string
	for _, tag := range matches {
		cleanTag := strings.TrimPrefix(tag, "#")
		tags = append(tags, cleanTag)
	}
	return tags
}
