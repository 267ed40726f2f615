// Package extension resolves optionally-configured extension names to usable
// implementations. Extension points are held in a registry mapping a
// configured identifier to a constructor, populated at process startup from
// the built-in set; host programs embedding the engine may register more. A
// blank name is a legitimate "use the default" signal, while an explicit but
// unknown name is a configuration error.
package extension
