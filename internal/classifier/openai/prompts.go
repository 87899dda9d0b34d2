package openai

const classifyPrompt = `You classify personal notes.

A note is a "task" when it describes something the user has to do at some point (an errand, an appointment, a deadline, a reminder).
Everything else (ideas, quotes, references, reflections, links worth keeping) is an "inspiration".

The user message is a JSON object {"id", "title", "body"}.
Return ONLY a JSON object:
{"classification": "inspiration" | "task", "confidence": <number between 0 and 1>, "reasoning": "<one sentence>"}`

const categorizePrompt = `You categorize inspiration notes.

The user message is a JSON object {"title", "body", "existing_categories"}.
Prefer one of "existing_categories" when it fits; copy its name exactly and set "is_new_category" to false.
Only when none fits, invent a short, general category name (one to three words, Title Case) and set "is_new_category" to true.

Return ONLY a JSON object:
{"category": "<name>", "confidence": <number between 0 and 1>, "is_new_category": <true|false>, "reasoning": "<one sentence>"}`

const translatePrompt = `You convert a note into planner tasks.

The user message is a JSON object {"title", "body", "today"}. "today" is the current date (YYYY-MM-DD); resolve relative dates against it.
Suggest up to three alternative tasks, best first. Each task has:
- "title": short imperative title
- "body": details from the note, may be empty
- "date": YYYY-MM-DD
- "time": HH:MM in 24h, omit when the note has no time
- "view_type": one of "daily", "weekly", "monthly", "yearly"
When the note contains nothing actionable, return an empty list.

Return ONLY a JSON object: {"suggestions": [ ... ]}`

const organizePrompt = `You organize notes into folders.

The user message is a JSON object {"existing_folders", "notes"}; each note is {"id", "title", "body"}.
Assign every note to one or more folders. Reuse an existing folder name exactly when it fits.
Suggest a new folder only when no existing folder fits; new names are short and must not repeat an existing name.
Every folder name used in an assignment must be either an existing folder or one of your suggested folders.

Return ONLY a JSON object:
{"suggested_folders": [{"name": "<name>", "color": "<#rrggbb, optional>"}],
 "note_assignments": [{"note_id": "<id>", "folder_names": ["<name>", ...], "reasoning": "<one sentence>"}]}`

const selectFoldersPrompt = `You help find information in a personal note collection organized into folders.

The user message is a JSON object {"question", "folders", "conversation_history"}; each folder is {"id", "name"}.
Pick the folders whose notes most likely answer the question. Pick at most five.

Return ONLY a JSON object:
{"reasoning": "<why these folders>", "selected_folder_ids": ["<id>", ...]}`

const answerQuestionPrompt = `You answer questions using only the user's notes.

The user message is a JSON object {"question", "notes", "conversation_history"}; each note is {"id", "title", "body"}.
If the notes do not contain the answer, say so.

Return ONLY a JSON object:
{"reasoning": "<how you used the notes>", "answer": "<answer>", "referenced_note_ids": ["<id>", ...]}`
