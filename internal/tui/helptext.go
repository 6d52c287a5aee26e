package tui

// helpMarkdown is rendered with glamour when the help panel is open.
const helpMarkdown = `# pizzasearch

Type to filter the menu. A pizza is listed when its name **starts with** the
text in the search field.

- Matching is case-sensitive unless ` + "`search.ignore_case`" + ` is set.
- Results update once you stop typing for the debounce interval.
- Clearing the field keeps the last results on screen.

## Keys

| Key | Action |
| --- | --- |
| ↑ / ↓ | scroll the list |
| pgup / pgdn | page the list |
| tab | toggle this help |
| esc, ctrl+c | quit |
`
