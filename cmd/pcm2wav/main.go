// ABOUTME: Entry point for the pcm2wav converter
// ABOUTME: Turns a base64 PCM payload into a WAV file, inspects, plays or generates audio
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/visionboard/visionboard-go/internal/download"
	"github.com/visionboard/visionboard-go/internal/version"
	"github.com/visionboard/visionboard-go/pkg/audio"
	"github.com/visionboard/visionboard-go/pkg/audio/decode"
	"github.com/visionboard/visionboard-go/pkg/audio/encode"
	"github.com/visionboard/visionboard-go/pkg/audio/output"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("pcm2wav: %v", err)
	}
}

// run parses args and performs one conversion, inspection or playback
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("pcm2wav", flag.ContinueOnError)
	in := fs.String("in", "-", "Base64 PCM input file, - for stdin")
	out := fs.String("out", download.DefaultFileName, "WAV output file")
	rate := fs.Int("rate", audio.SpeechSampleRate, "Sample rate in Hz")
	channels := fs.Int("channels", audio.SpeechChannels, "Channel count")
	info := fs.String("info", "", "Print the header of this WAV file and exit")
	play := fs.String("play", "", "Play this WAV file and exit")
	tone := fs.Float64("tone", 0, "Generate a sine tone of this frequency in Hz instead of converting")
	toneDuration := fs.Duration("duration", time.Second, "Tone duration")
	toneBase64 := fs.Bool("base64", false, "Print the tone as a base64 PCM payload instead of writing a WAV")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *showVersion:
		fmt.Fprintln(stdout, version.String())
		return nil
	case *info != "":
		return printInfo(*info, stdout)
	case *play != "":
		return playFile(*play)
	case *tone > 0:
		format, err := audio.NewFormat(*rate, *channels)
		if err != nil {
			return err
		}
		return writeTone(*tone, *toneDuration, format, *out, *toneBase64, stdout)
	}

	payload, err := readInput(*in, stdin)
	if err != nil {
		return err
	}

	pcm, err := decode.Base64(payload)
	if err != nil {
		return err
	}
	wav, err := encode.WAV(pcm, *rate, *channels)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, wav, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}
	log.Printf("Wrote %s (%d bytes PCM, %d Hz, %d ch)", *out, len(pcm), *rate, *channels)
	return nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func printInfo(path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	pcm, f, err := decode.WAVData(data)
	if err != nil {
		return err
	}

	dec, err := decode.NewPCM(f)
	if err != nil {
		return err
	}
	defer dec.Close()

	samples, err := dec.Decode(pcm)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d Hz, %d ch, %d bit, %d data bytes, %d frames, peak %.1f%%\n",
		path, f.SampleRate, f.Channels, f.BitDepth, len(pcm), f.FrameCount(len(pcm)), peakPercent(samples))
	return nil
}

// peakPercent returns the largest absolute sample as a percentage of full scale
func peakPercent(samples []int16) float64 {
	var peak float64
	for _, s := range samples {
		v := math.Abs(float64(audio.SampleToFloat(s)))
		if v > peak {
			peak = v
		}
	}
	return peak * 100
}

func playFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	pcm, format, err := decode.WAVData(data)
	if err != nil {
		return err
	}
	buf, err := decode.Playable(pcm, format.SampleRate, format.Channels)
	if err != nil {
		return err
	}

	pb, err := output.NewOto().Play(buf)
	if err != nil {
		return err
	}
	log.Printf("Playing %s (%.1fs)", path, buf.Duration())
	pb.Wait()
	return nil
}
