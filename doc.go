// Package idgen builds unique identifiers: UUIDs of versions 1, 3, 4, 5, 6,
// 7 and 8, ULIDs and MongoDB ObjectIds, each rendered in its canonical
// string form.
//
// Identifiers are described by a Request, checked by Validate and resolved
// once into a Generator, which is then called as many times as needed:
//
//	gen, err := idgen.NewGenerator(idgen.UUIDRequest{Version: idgen.VersionTimeSorted})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := idgen.Emit(os.Stdout, gen, 10); err != nil {
//	    log.Fatal(err)
//	}
//
// The builders can also be used directly:
//
//	v5 := idgen.NewV5(idgen.NamespaceDNS, "example.com")
//	v1, err := idgen.NewV1(idgen.TimestampOf(time.Now()), node, rand.Reader)
//	v8 := idgen.NewV8(payload)
//
// Version layouts:
//   - v1: 60-bit count of 100ns intervals since 1582-10-15, 14-bit clock sequence, 48-bit node
//   - v3/v5: MD5/SHA-1 of a name space identifier and a name
//   - v4: 122 random bits
//   - v6: the v1 fields reordered so that the bytes sort by time
//   - v7: 48-bit Unix milliseconds, 12-bit monotonic counter, 62 random bits
//   - v8: caller supplied payload with version and variant bits forced
//
// Timestamps supplied by the caller are a Timestamp of seconds and
// nanoseconds; ParseTimestamp reads them from a single digit string whose
// last nine digits are the nanoseconds.
//
// Thread Safety:
//
// Every Generator can be used concurrently from multiple goroutines. The v7
// generator serialises calls to keep its counter monotonic.
//
// Standards Compliance:
//
// UUIDs follow RFC 4122 and RFC 9562, ULIDs the ULID specification with
// Crockford base32, ObjectIds the BSON ObjectId layout.
package idgen
