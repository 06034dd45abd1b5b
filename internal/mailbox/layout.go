// internal/mailbox/layout.go
package mailbox

// Mailbox layout constants.
// These values define the host protocol and MUST NOT be configurable.
// Any layout change requires bumping the format version triple.

// ---- BUFFER GEOMETRY ----

// TextSize is the program text buffer capacity in bytes.
const TextSize = 2048

// RStackSize is the return stack buffer capacity in bytes.
const RStackSize = 2048

// DataSizeSmall is the constant-data capacity on the small tier.
const DataSizeSmall = 2048

// DataSizeLarge is the constant-data capacity on the large tier.
const DataSizeLarge = 20480

// ScratchSize is the engine's transient workspace in bytes. The scratch is
// device-internal; it is listed here because its size is part of what a
// program may assume.
const ScratchSize = 256

// ---- WORD INDICES ----

// The scalar words form one fixed block in this order. A host reads them as
// 32-bit values at these indices.

// WordRequests holds the count of successful invocations.
const WordRequests = 0

// WordErrors holds the count of failed invocations.
const WordErrors = 1

// WordKick holds the pending-request depth. Host increments, device
// decrements, exactly one decrement per processed request.
const WordKick = 2

// WordReady is nonzero while the device is idling between invocations.
const WordReady = 3

// ---- VERSION ----

const WordVersionMajor = 4
const WordVersionMinor = 5
const WordVersionPatch = 6

// NumWords is the scalar block size.
const NumWords = 7
