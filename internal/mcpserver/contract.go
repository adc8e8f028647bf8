package mcpserver

// AudioPayloadContract describes the canonical audio payload format that
// consumers should follow when creating recordings.
const AudioPayloadContract = `# RecYourSelf Audio Payload Contract

Every recording created through the API or MCP tools carries an ` + "`audio`" + `
payload chosen from one of two variants. The variant is resolved once, at
create time, by the payload's shape.

## Variant 1 — materialized file (data URI)

` + "```" + `
data:<mime-type>;base64,<base64-encoded-bytes>
` + "```" + `

Rules:

1. **The MIME type MUST be an accepted audio type.** Accepted:
   ` + "`audio/wav`" + `, ` + "`audio/x-wav`" + `, ` + "`audio/mpeg`" + `, ` + "`audio/mp3`" + `,
   ` + "`audio/ogg`" + `, ` + "`audio/webm`" + `. Anything else is rejected as an
   invalid audio format.
2. **The payload MUST be valid base64** (standard alphabet, padded or
   unpadded).
3. The decoded bytes are written to disk as
   ` + "`<title>_<id>.<ext>`" + ` and the stored ` + "`audio`" + ` value becomes the
   file reference ` + "`/public/<title>_<id>.<ext>`" + `, which is served as
   static content.

## Variant 2 — inline value

Any payload without the ` + "`data:`" + ` prefix is stored verbatim. No file is
written; the value is returned exactly as supplied on every list.

## Immutability

` + "`audio`" + ` (either variant), ` + "`id`" + `, and ` + "`createdAt`" + ` never change
after creation. Updates overwrite only ` + "`title`" + ` and ` + "`description`" + `,
and always both at once.

## Example

` + "```" + `json
{
  "title": "standup",
  "description": "monday notes",
  "audio": "data:audio/wav;base64,UklGRiQAAABXQVZF"
}
` + "```" + `

creates ` + "`/public/standup_1.wav`" + ` containing the decoded bytes.
`
