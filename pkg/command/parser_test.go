package command

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedCommand
	}{
		{
			name:  "simple verb object",
			input: "take lamp",
			want:  ParsedCommand{Verb: VerbTake, Object: "lamp", Raw: "take lamp"},
		},
		{
			name:  "synonym verb",
			input: "grab the lamp",
			want:  ParsedCommand{Verb: VerbTake, Object: "lamp", Raw: "grab the lamp"},
		},
		{
			name:  "verb particle",
			input: "pick up the brass lamp",
			want:  ParsedCommand{Verb: VerbTake, Object: "brass lamp", Raw: "pick up the brass lamp"},
		},
		{
			name:  "go with direction",
			input: "go north",
			want:  ParsedCommand{Verb: VerbGo, Direction: DirNorth, Raw: "go north"},
		},
		{
			name:  "bare direction",
			input: "north",
			want:  ParsedCommand{Verb: VerbGo, Direction: DirNorth, Raw: "north"},
		},
		{
			name:  "direction shorthand",
			input: "n",
			want:  ParsedCommand{Verb: VerbGo, Direction: DirNorth, Raw: "n"},
		},
		{
			name:  "movement synonym with direction",
			input: "flee east",
			want:  ParsedCommand{Verb: VerbGo, Direction: DirEast, Raw: "flee east"},
		},
		{
			name:  "upstairs normalizes",
			input: "climb upstairs",
			want:  ParsedCommand{Verb: VerbGo, Direction: DirUp, Raw: "climb upstairs"},
		},
		{
			name:  "instrument phrase",
			input: "unlock door with iron key",
			want: ParsedCommand{
				Verb: VerbUnlock, Object: "door", Preposition: "with",
				Instrument: "iron key", Raw: "unlock door with iron key",
			},
		},
		{
			name:  "put into container",
			input: "put the locket in the trophy case",
			want: ParsedCommand{
				Verb: VerbPut, Object: "locket", Preposition: "in",
				Instrument: "trophy case", Raw: "put the locket in the trophy case",
			},
		},
		{
			name:  "turn on remaps to object",
			input: "turn on lamp",
			want: ParsedCommand{
				Verb: VerbTurn, Object: "lamp", Preposition: "on",
				Raw: "turn on lamp",
			},
		},
		{
			name:  "look at remaps to object",
			input: "look at portrait",
			want: ParsedCommand{
				Verb: VerbLook, Object: "portrait", Preposition: "at",
				Raw: "look at portrait",
			},
		},
		{
			name:  "look under remaps to object",
			input: "look under bed",
			want: ParsedCommand{
				Verb: VerbLook, Object: "bed", Preposition: "under",
				Raw: "look under bed",
			},
		},
		{
			name:  "shorthand examine",
			input: "x mirror",
			want:  ParsedCommand{Verb: VerbExamine, Object: "mirror", Raw: "x mirror"},
		},
		{
			name:  "bare inventory",
			input: "i",
			want:  ParsedCommand{Verb: VerbInventory, Raw: "i"},
		},
		{
			name:  "punctuation stripped",
			input: "open the mailbox!",
			want:  ParsedCommand{Verb: VerbOpen, Object: "mailbox", Raw: "open the mailbox!"},
		},
		{
			name:  "mixed case",
			input: "TAKE Lamp",
			want:  ParsedCommand{Verb: VerbTake, Object: "lamp", Raw: "TAKE Lamp"},
		},
		{
			name:  "surrounding whitespace",
			input: "   wait   ",
			want:  ParsedCommand{Verb: VerbWait, Raw: "wait"},
		},
		{
			name:  "attack with weapon",
			input: "attack wraith with candlestick",
			want: ParsedCommand{
				Verb: VerbAttack, Object: "wraith", Preposition: "with",
				Instrument: "candlestick", Raw: "attack wraith with candlestick",
			},
		},
		{
			name:  "unknown verb",
			input: "frobnicate the lamp",
			want:  ParsedCommand{Raw: "frobnicate the lamp"},
		},
		{
			name:  "empty input",
			input: "",
			want:  ParsedCommand{},
		},
		{
			name:  "whitespace only",
			input: "   \t  ",
			want:  ParsedCommand{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	inputs := []string{
		"go north",
		"put locket in trophy case",
		"xyzzy",
		"LOOK under THE bed",
		"",
	}
	for _, input := range inputs {
		first := Parse(input)
		for i := 0; i < 10; i++ {
			if got := Parse(input); !reflect.DeepEqual(got, first) {
				t.Errorf("Parse(%q) differed between calls: %+v vs %+v", input, first, got)
			}
		}
	}
}

func TestParseUnknownIsUnknown(t *testing.T) {
	pc := Parse("dance wildly")
	if !pc.IsUnknown() {
		t.Errorf("expected unknown verb for unrecognized input, got %q", pc.Verb)
	}
	if pc.Raw != "dance wildly" {
		t.Errorf("raw input should be preserved, got %q", pc.Raw)
	}
}
