/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"mosn.io/pkg/log"

	"mosn.io/linkedlist/pkg/configmanager"
)

var (
	cmdDemo = cli.Command{
		Name:  "demo",
		Usage: "build a list, print it, sort it, print it again and clear it",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "config, c",
				Usage:  "Load configuration from `FILE`",
				EnvVar: "SORTLIST_CONFIG",
			}, cli.StringFlag{
				Name:   "log-level, l",
				Usage:  "log level, trace|debug|info|warning|error|critical",
				EnvVar: "LOG_LEVEL",
			}, cli.BoolFlag{
				Name:  "stats, s",
				Usage: "print the list metrics at the end",
			}, cli.BoolFlag{
				Name:  "reverse, r",
				Usage: "also print every list last to first",
			},
		},
		Action: func(c *cli.Context) error {
			conf, err := configmanager.Load(c.String("config"))
			if err != nil {
				log.DefaultLogger.Errorf("[sortlist] [demo] load config failed: %v", err)
				return err
			}
			if c.IsSet("log-level") {
				conf.LogLevel = c.String("log-level")
			}
			if c.Bool("stats") {
				conf.Stats = true
			}
			if c.Bool("reverse") {
				conf.Reverse = true
			}
			if err := setLogLevel(conf.LogLevel); err != nil {
				return err
			}
			return runDemo(c.App.Writer, conf)
		},
	}

	cmdSort = cli.Command{
		Name:      "sort",
		Usage:     "sort the given numbers",
		ArgsUsage: "NUMBER...",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "sorted",
				Usage: "insert every number at its sorted position instead of sorting at the end",
			}, cli.BoolFlag{
				Name:  "reverse, r",
				Usage: "print the list last to first",
			},
		},
		Action: func(c *cli.Context) error {
			values := make([]float64, 0, len(c.Args()))
			for _, arg := range c.Args() {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.Wrapf(err, "invalid number %q", arg)
				}
				values = append(values, v)
			}
			return runSort(c.App.Writer, values, c.Bool("sorted"), c.Bool("reverse"))
		},
	}
)

func setLogLevel(level string) error {
	lv, err := configmanager.ParseLogLevel(level)
	if err != nil {
		return err
	}
	log.DefaultLogger.SetLogLevel(lv)
	return nil
}
