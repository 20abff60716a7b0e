package generator

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// maxToolRounds bounds the request/tool-call cycles of one Complete call.
const maxToolRounds = 4

// OpenAILLM implements LLMClient using the official openai-go SDK (chat completions).
type OpenAILLM struct {
	Model string
	Opts  []option.RequestOption
}

func NewOpenAILLMFromConfig(cfg *LLMSettings) (*OpenAILLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	if cfg.Provider == "deepseek" && cfg.BaseURL == "" {
		// DeepSeek is reached through its OpenAI-compatible endpoint.
		return nil, errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAILLM{Model: cfg.Model, Opts: opts}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.Opts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	}
	tools := make(map[string]Tool, len(prompt.Tools))
	for _, t := range prompt.Tools {
		tools[t.Name()] = t
		params.Tools = append(params.Tools, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        t.Name(),
				Description: openai.String(t.Description()),
				Parameters:  openai.FunctionParameters(t.Parameters()),
			},
		})
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := client.Chat.Completions.New(ctx, params)
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("openai: empty choices")
		}
		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		params.Messages = append(params.Messages, msg.ToParam())
		for _, call := range msg.ToolCalls {
			t, ok := tools[call.Function.Name]
			if !ok {
				params.Messages = append(params.Messages, openai.ToolMessage(fmt.Sprintf("unknown tool %q", call.Function.Name), call.ID))
				continue
			}
			out, err := t.Call(ctx, call.Function.Arguments)
			if err != nil {
				return "", err
			}
			params.Messages = append(params.Messages, openai.ToolMessage(out, call.ID))
		}
	}
	return "", fmt.Errorf("openai: no final answer after %d tool rounds", maxToolRounds)
}
