package testutil

// SampleChat is a small well-formed two-person export covering replies,
// questions, a low-effort reply, and a media placeholder.
const SampleChat = `1/1/23, 10:00 - Alice: hi
1/1/23, 10:02 - Bob: hi back
1/1/23, 10:05 - Alice: how are you?
1/1/23, 10:06 - Bob: good lol
1/1/23, 10:07 - Alice: <Media omitted>
`

// ThreeAuthorChat parses cleanly but has too many participants.
const ThreeAuthorChat = `1/1/23, 10:00 - Alice: hi
1/1/23, 10:02 - Bob: hi back
1/1/23, 10:05 - Carol: hello everyone
`

// MalformedChat has no line matching the export grammar.
const MalformedChat = `this is not a chat export
neither is this
[2023-01-01 10:00] Alice: wrong format
`
