package openai

import (
	"context"
	"encoding/json"

	"github.com/at-ishikawa/noteflow/internal/classifier"
)

// Organize implements the classifier.Gateway interface.
// Requests larger than maxTokensPerBatch are split into batches; every batch
// sees the folders suggested by the batches before it.
func (client *Client) Organize(ctx context.Context, req classifier.OrganizeRequest) (classifier.OrganizeResponse, error) {
	if len(req.Notes) == 0 {
		return emptyOrganizeResponse(), nil
	}

	batches := chunkNotes(req.Notes, client.maxTokensPerBatch)
	existing := append([]string{}, req.ExistingFolders...)
	results := make([]classifier.OrganizeResponse, 0, len(batches))
	for _, batch := range batches {
		result, err := client.organizeBatch(ctx, batch, existing)
		if err != nil {
			return classifier.OrganizeResponse{}, err
		}
		results = append(results, result)
		for _, folder := range result.SuggestedFolders {
			existing = append(existing, folder.Name)
		}
	}
	return mergeOrganizeResults(results), nil
}

func (client *Client) organizeBatch(ctx context.Context, notes []classifier.NoteInput, existingFolders []string) (classifier.OrganizeResponse, error) {
	payload := struct {
		ExistingFolders []string               `json:"existing_folders"`
		Notes           []classifier.NoteInput `json:"notes"`
	}{ExistingFolders: existingFolders, Notes: notes}

	var result classifier.OrganizeResponse
	if err := client.complete(ctx, "organize", organizePrompt, payload, &result); err != nil {
		return classifier.OrganizeResponse{}, err
	}
	return result, nil
}

// estimateTokens assumes roughly four characters per token.
func estimateTokens(note classifier.NoteInput) int {
	b, err := json.Marshal(note)
	if err != nil {
		return len(note.Title+note.Body) / 4
	}
	return len(b) / 4
}

func chunkNotes(notes []classifier.NoteInput, maxTokens int) [][]classifier.NoteInput {
	var chunks [][]classifier.NoteInput
	var current []classifier.NoteInput
	currentTokens := 0
	for _, note := range notes {
		tokens := estimateTokens(note)
		if currentTokens+tokens > maxTokens && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
			currentTokens = 0
		}
		current = append(current, note)
		currentTokens += tokens
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

// mergeOrganizeResults keeps the first suggestion of every folder name and all assignments.
func mergeOrganizeResults(results []classifier.OrganizeResponse) classifier.OrganizeResponse {
	merged := emptyOrganizeResponse()
	seen := make(map[string]bool)
	for _, result := range results {
		for _, folder := range result.SuggestedFolders {
			if seen[folder.Name] {
				continue
			}
			seen[folder.Name] = true
			merged.SuggestedFolders = append(merged.SuggestedFolders, folder)
		}
		merged.NoteAssignments = append(merged.NoteAssignments, result.NoteAssignments...)
	}
	return merged
}

func emptyOrganizeResponse() classifier.OrganizeResponse {
	return classifier.OrganizeResponse{
		SuggestedFolders: []classifier.FolderSuggestion{},
		NoteAssignments:  []classifier.NoteAssignment{},
	}
}
