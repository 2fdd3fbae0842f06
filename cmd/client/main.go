package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: client [add|remove|get|list|book|check|available] [flags]")
		os.Exit(1)
	}

	baseURL := os.Getenv("BOOKING_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c := &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}

	cmd := os.Args[1]
	switch cmd {
	case "add":
		addCmd(c, os.Args[2:])
	case "remove":
		removeCmd(c, os.Args[2:])
	case "get":
		getCmd(c, os.Args[2:])
	case "list":
		listCmd(c, os.Args[2:])
	case "book":
		bookCmd(c, os.Args[2:])
	case "check":
		checkCmd(c, os.Args[2:])
	case "available":
		availableCmd(c, os.Args[2:])
	default:
		fmt.Println("unknown command:", cmd)
		os.Exit(1)
	}
}

type client struct {
	baseURL string
	http    *http.Client
}

type roomPayload struct {
	Building   string `json:"building"`
	RoomNumber string `json:"room_number"`
	Capacity   int    `json:"capacity"`
	Projector  bool   `json:"projector"`
	Internet   bool   `json:"internet"`
}

type codeBody struct {
	Code string `json:"code"`
}

type roomBody struct {
	Code string       `json:"code"`
	Room *roomPayload `json:"room,omitempty"`
}

type roomListBody struct {
	Rooms []roomPayload `json:"rooms"`
}

func (c *client) do(method, path string, reqBody, out any) error {
	var body io.Reader
	if reqBody != nil {
		buf, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bad request: %s", data)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func printRoom(r roomPayload) {
	fmt.Printf("- %s-%s | capacity %d | projector %t | internet %t\n",
		r.Building, r.RoomNumber, r.Capacity, r.Projector, r.Internet)
}

func filterQuery(fs *flag.FlagSet) url.Values {
	q := url.Values{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min-capacity":
			q.Set("min_capacity", f.Value.String())
		case "building":
			q.Set("building", f.Value.String())
		case "projector":
			q.Set("projector", f.Value.String())
		case "internet":
			q.Set("internet", f.Value.String())
		}
	})
	return q
}

// ----- subcommands -----

func addCmd(c *client, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	building := fs.String("building", "", "building code (LTC|NAB|FD1|FD2|FD3)")
	number := fs.String("number", "", "room number (4 digits)")
	capacity := fs.Int("capacity", 0, "capacity (multiple of 50 in [50,400])")
	projector := fs.Bool("projector", false, "room has a projector")
	internet := fs.Bool("internet", false, "room has internet")
	_ = fs.Parse(args)

	if *building == "" || *number == "" {
		log.Fatal("building and number are required")
	}

	var out codeBody
	err := c.do(http.MethodPost, "/rooms", roomPayload{
		Building:   *building,
		RoomNumber: *number,
		Capacity:   *capacity,
		Projector:  *projector,
		Internet:   *internet,
	}, &out)
	if err != nil {
		log.Fatalf("AddRoom error: %v", err)
	}
	fmt.Println("AddRoom:", out.Code)
}

func removeCmd(c *client, args []string) {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	building := fs.String("building", "", "building code")
	number := fs.String("number", "", "room number")
	_ = fs.Parse(args)

	if *building == "" || *number == "" {
		log.Fatal("building and number are required")
	}

	var out codeBody
	err := c.do(http.MethodDelete, "/rooms/"+*building+"/"+*number, nil, &out)
	if err != nil {
		log.Fatalf("RemoveRoom error: %v", err)
	}
	fmt.Println("RemoveRoom:", out.Code)
}

func getCmd(c *client, args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	building := fs.String("building", "", "building code")
	number := fs.String("number", "", "room number")
	_ = fs.Parse(args)

	if *building == "" || *number == "" {
		log.Fatal("building and number are required")
	}

	var out roomBody
	err := c.do(http.MethodGet, "/rooms/"+*building+"/"+*number, nil, &out)
	if err != nil {
		log.Fatalf("GetRoom error: %v", err)
	}
	if out.Room == nil {
		fmt.Println("room not found")
		return
	}
	printRoom(*out.Room)
}

func listCmd(c *client, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Int("min-capacity", 0, "minimum capacity")
	fs.String("building", "", "building code")
	fs.Bool("projector", false, "require a projector")
	fs.Bool("internet", false, "require internet")
	_ = fs.Parse(args)

	path := "/rooms"
	if q := filterQuery(fs); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out roomListBody
	if err := c.do(http.MethodGet, path, nil, &out); err != nil {
		log.Fatalf("FilterRooms error: %v", err)
	}
	if len(out.Rooms) == 0 {
		fmt.Println("(no rooms)")
		return
	}
	for _, r := range out.Rooms {
		printRoom(r)
	}
}

func bookCmd(c *client, args []string) {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	building := fs.String("building", "", "building code")
	number := fs.String("number", "", "room number")
	hour := fs.Int("hour", 0, "hour slot (1-10)")
	minCap := fs.Int("min-capacity", 0, "required capacity")
	projector := fs.Bool("projector", false, "require a projector")
	internet := fs.Bool("internet", false, "require internet")
	_ = fs.Parse(args)

	if *building == "" || *number == "" {
		log.Fatal("building and number are required")
	}

	var out codeBody
	err := c.do(http.MethodPost, "/rooms/"+*building+"/"+*number+"/bookings", map[string]any{
		"hour":         *hour,
		"min_capacity": *minCap,
		"projector":    *projector,
		"internet":     *internet,
	}, &out)
	if err != nil {
		log.Fatalf("BookRoom error: %v", err)
	}
	fmt.Println("BookRoom:", out.Code)
}

func checkCmd(c *client, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	building := fs.String("building", "", "building code")
	number := fs.String("number", "", "room number")
	hour := fs.Int("hour", 0, "hour slot (1-10)")
	_ = fs.Parse(args)

	if *building == "" || *number == "" {
		log.Fatal("building and number are required")
	}

	var out codeBody
	path := "/rooms/" + *building + "/" + *number + "/availability?hour=" + strconv.Itoa(*hour)
	if err := c.do(http.MethodGet, path, nil, &out); err != nil {
		log.Fatalf("CheckAvailability error: %v", err)
	}
	fmt.Println("CheckAvailability:", out.Code)
}

func availableCmd(c *client, args []string) {
	fs := flag.NewFlagSet("available", flag.ExitOnError)
	hour := fs.Int("hour", 0, "hour slot (1-10)")
	fs.Int("min-capacity", 0, "minimum capacity")
	fs.String("building", "", "building code")
	fs.Bool("projector", false, "require a projector")
	fs.Bool("internet", false, "require internet")
	_ = fs.Parse(args)

	q := filterQuery(fs)
	q.Set("hour", strconv.Itoa(*hour))

	var out roomListBody
	if err := c.do(http.MethodGet, "/availability?"+q.Encode(), nil, &out); err != nil {
		log.Fatalf("AvailableRooms error: %v", err)
	}
	if len(out.Rooms) == 0 {
		fmt.Println("(no rooms available)")
		return
	}
	for _, r := range out.Rooms {
		printRoom(r)
	}
}
