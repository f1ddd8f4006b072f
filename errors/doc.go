// Package errors provides the Parse error taxonomy.
//
// Every failure the SDK surfaces is tagged with exactly one stable numeric code
// from a fixed registry, a retry classification, a human-readable message and
// optional context metadata. It maintains full compatibility with the standard
// library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Registry
//
// Codes are process-wide constants shared with the Parse server. They are never
// reassigned: new failure kinds get new codes. The registry maps each code to a
// canonical name and description:
//
//	def, ok := errors.Lookup(errors.CodeCacheMiss)
//	fmt.Println(def.Name, def.Description)
//
// Three codes carry two documented names each, the generic linked-account name
// and the older Facebook-specific one:
//
//   - 208: AccountAlreadyLinked, FacebookAccountAlreadyLinked
//   - 250: LinkedIDMissing, FacebookIDMissing
//   - 251: InvalidLinkedSession, FacebookInvalidSession
//
// Apart from these aliases the mapping from code to meaning is injective.
//
// # Creating errors
//
//	err := errors.New(errors.CodeObjectNotFound, "no GameScore with id xWMyZ4YEGZ")
//	err := errors.Newf(errors.CodeInvalidClassName, "invalid class name %q", name)
//
// Wrapping errors from collaborators:
//
//	body, err := network.Find(ctx, q)
//	if err != nil {
//	    return nil, errors.Classify(err)
//	}
//
// Decoding server responses:
//
//	err := errors.FromResponse([]byte(`{"code":101,"error":"object not found for get"}`))
//
// # Classification
//
// Each code has a default classification. Internal server errors, failed
// connections, server timeouts and exceeded request limits are retryable;
// everything else is permanent. Use errors.IsRetryable(err) to make retry
// decisions. The classification is preserved when wrapping errors and can be
// overridden with WithClassification.
//
// # Results
//
// ToResult flattens any error into the uniform outcome shape
// {succeeded, code, message}. Application code should switch on the code,
// never on the message text.
package errors
